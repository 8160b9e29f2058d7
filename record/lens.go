package record

// Lens focuses on one part of an immutable structure. Get reads the focused
// value; Set and Modify return a new structure, never touching the source.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens builds a lens from a getter and a copy-on-write setter.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get reads the focused value out of source.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify returns a new structure with fn applied to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// ComposeLens focuses deeper by running inner after outer.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// ForKey is a lens into one key of a map-shaped record. Its setter goes
// through Set, so writing through the lens copies the record.
func ForKey[K comparable, V any](key K) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(rec map[K]V) V {
			return rec[key]
		},
		set: func(rec map[K]V, v V) map[K]V {
			return Set(rec, key, v)
		},
	}
}
