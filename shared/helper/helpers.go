package helper

import (
	"fmt"
)

// TypedValueOf narrows an untyped record lookup to the expected type T.
// It reports false when the lookup misses or the value has another type.
func TypedValueOf[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// TypedValueOrErr narrows an untyped lookup to the expected type T,
// reporting misses and type mismatches as wrapped errors.
func TypedValueOrErr[T any](getFn func() (any, error)) (T, error) {
	var zero T

	raw, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", raw)
	}

	return val, nil
}

// MustTypedValue is the panic-on-failure variant of TypedValueOrErr, for
// lookups whose keys the caller guarantees to exist with the right type.
func MustTypedValue[T any](getFn func() (any, error)) T {
	res, err := TypedValueOrErr[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
