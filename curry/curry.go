// Package curry provides arity-indexed adapters between n-ary functions
// and chains of unary functions.
//
// CurryN turns a function of N arguments into N nested unary functions;
// UncurryN is the exact inverse. Supplying the wrong number of arguments
// is a type error, not a runtime condition.
package curry

func Curry2[I1, I2, O any](fn func(I1, I2) O) func(I1) func(I2) O {
	return func(i1 I1) func(I2) O {
		return func(i2 I2) O {
			return fn(i1, i2)
		}
	}
}

func Curry3[I1, I2, I3, O any](fn func(I1, I2, I3) O) func(I1) func(I2) func(I3) O {
	return func(i1 I1) func(I2) func(I3) O {
		return Curry2(func(i2 I2, i3 I3) O {
			return fn(i1, i2, i3)
		})
	}
}

func Curry4[I1, I2, I3, I4, O any](fn func(I1, I2, I3, I4) O) func(I1) func(I2) func(I3) func(I4) O {
	return func(i1 I1) func(I2) func(I3) func(I4) O {
		return Curry3(func(i2 I2, i3 I3, i4 I4) O {
			return fn(i1, i2, i3, i4)
		})
	}
}

func Curry5[I1, I2, I3, I4, I5, O any](fn func(I1, I2, I3, I4, I5) O) func(I1) func(I2) func(I3) func(I4) func(I5) O {
	return func(i1 I1) func(I2) func(I3) func(I4) func(I5) O {
		return Curry4(func(i2 I2, i3 I3, i4 I4, i5 I5) O {
			return fn(i1, i2, i3, i4, i5)
		})
	}
}

func Uncurry2[I1, I2, O any](fn func(I1) func(I2) O) func(I1, I2) O {
	return func(i1 I1, i2 I2) O {
		return fn(i1)(i2)
	}
}

func Uncurry3[I1, I2, I3, O any](fn func(I1) func(I2) func(I3) O) func(I1, I2, I3) O {
	return func(i1 I1, i2 I2, i3 I3) O {
		return fn(i1)(i2)(i3)
	}
}

func Uncurry4[I1, I2, I3, I4, O any](fn func(I1) func(I2) func(I3) func(I4) O) func(I1, I2, I3, I4) O {
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return fn(i1)(i2)(i3)(i4)
	}
}

func Uncurry5[I1, I2, I3, I4, I5, O any](fn func(I1) func(I2) func(I3) func(I4) func(I5) O) func(I1, I2, I3, I4, I5) O {
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5) O {
		return fn(i1)(i2)(i3)(i4)(i5)
	}
}

// Partial2 fixes the first argument of a binary function.
func Partial2[I1, I2, O any](fn func(I1, I2) O, i1 I1) func(I2) O {
	return Curry2(fn)(i1)
}

// Partial3 fixes the first argument of a ternary function.
func Partial3[I1, I2, I3, O any](fn func(I1, I2, I3) O, i1 I1) func(I2, I3) O {
	return func(i2 I2, i3 I3) O {
		return fn(i1, i2, i3)
	}
}
