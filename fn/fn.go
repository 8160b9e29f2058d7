package fn

// Identity returns its argument unchanged. It is the left and right
// identity of Compose, and mostly useful as an argument to higher-order
// functions elsewhere in this module.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Compose is left-to-right function composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 composes three functions left to right.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Compose(Compose(f, g), h)
}

// Pipe chains endomorphisms into a single function applying them in order.
// Pipe() is Identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		return Apply(v, fns...)
	}
}

// Apply threads v through fns left to right and returns the final value.
func Apply[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Flip swaps the argument order of a binary function.
func Flip[A, B, R any](fn func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return fn(a, b)
	}
}
