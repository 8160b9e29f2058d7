package wrap

// Functor constrains containers exposing an endomorphic Map that preserves
// the container type. The self-referential parameter F is the implementing
// type itself, e.g. Identity[T] satisfies Functor[T, Identity[T]].
type Functor[T, F any] interface {
	Map(fn func(T) T) F
}

// Monad extends Functor with FlatMap, composing functions that already
// return the container without nesting.
type Monad[T, M any] interface {
	Functor[T, M]
	FlatMap(fn func(T) M) M
}

// Identity holds exactly one value. The held value is set once by Of and
// never reassigned; every transform yields a new Identity.
type Identity[T any] struct {
	value T
}

// Of lifts a value into an Identity wrapper.
func Of[T any](v T) Identity[T] {
	return Identity[T]{value: v}
}

// Map returns a new Identity holding fn applied to the held value.
func (id Identity[T]) Map(fn func(T) T) Identity[T] {
	return Of(fn(id.value))
}

// FlatMap applies fn to the held value and returns its result directly.
func (id Identity[T]) FlatMap(fn func(T) Identity[T]) Identity[T] {
	return fn(id.value)
}

// Value unwraps the held value.
func (id Identity[T]) Value() T {
	return id.value
}

// Map is the type-changing functor operation.
func Map[A, B any](w Identity[A], fn func(A) B) Identity[B] {
	return Of(fn(w.value))
}

// FlatMap is the type-changing monad operation.
func FlatMap[A, B any](w Identity[A], fn func(A) Identity[B]) Identity[B] {
	return fn(w.value)
}

// MapAll threads a container through fns in order. It works for any type
// satisfying the Functor constraint, not just Identity.
func MapAll[T any, F Functor[T, F]](w F, fns ...func(T) T) F {
	for _, fn := range fns {
		w = w.Map(fn)
	}
	return w
}

// Chain threads a container through wrapping functions in order, for any
// type satisfying the Monad constraint.
func Chain[T any, M Monad[T, M]](w M, fns ...func(T) M) M {
	for _, fn := range fns {
		w = w.FlatMap(fn)
	}
	return w
}
