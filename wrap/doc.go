// Package wrap provides an immutable single-value container with functor
// and monad operations.
//
// Identity is not just a box around a value.
// Identity is a tool that *forces the developer to ask*:
//
//	→ "Does this transformation stay inside the container?"
//	→ "Can these wrapping steps compose without nesting?"
//
// Of lifts a value; Map transforms the held value and returns a fresh
// wrapper; FlatMap applies a function that itself returns a wrapper and
// hands back its result directly, so chains of wrapping functions never
// double-wrap. No operation ever mutates a receiver.
//
// The method forms are endomorphic: they keep the held type. Go methods
// cannot introduce new type parameters, so the type-changing forms live at
// package level as Map and FlatMap functions.
//
// The operations satisfy the usual laws:
//
//   - functor identity:     w.Map(id) ≡ w
//   - functor composition:  w.Map(f).Map(g) ≡ w.Map(g ∘ f)
//   - monad left identity:  Of(x).FlatMap(f) ≡ f(x)
//   - monad right identity: w.FlatMap(Of) ≡ w
//
// See wrap_test.go for checks of each law.
package wrap
