// Package record provides copy-on-write updates for map-shaped records.
//
// Every function takes a map, leaves it untouched, and returns a fresh map
// reflecting the update. A nil input map is treated as empty.
package record

import (
	"fmt"

	"github.com/fnground/fnkit/shared/helper"
)

// Set returns a copy of rec with key bound to val.
func Set[K comparable, V any](rec map[K]V, key K, val V) map[K]V {
	next := clone(rec, 1)
	next[key] = val
	return next
}

// Delete returns a copy of rec without key. Absent keys are a no-op copy.
func Delete[K comparable, V any](rec map[K]V, key K) map[K]V {
	next := make(map[K]V, len(rec))
	for k, v := range rec {
		if k != key {
			next[k] = v
		}
	}
	return next
}

// Merge returns a copy of base with every binding of overlay applied on top.
func Merge[K comparable, V any](base, overlay map[K]V) map[K]V {
	next := clone(base, len(overlay))
	for k, v := range overlay {
		next[k] = v
	}
	return next
}

// Modify returns a copy of rec with fn applied to the value at key.
// If key is absent the copy is returned unchanged.
func Modify[K comparable, V any](rec map[K]V, key K, fn func(V) V) map[K]V {
	next := clone(rec, 0)
	if cur, ok := next[key]; ok {
		next[key] = fn(cur)
	}
	return next
}

// Get extracts the value at key from a heterogeneous record, asserting it
// to T. It reports false when the key is absent or holds a different type.
func Get[T any](rec map[string]any, key string) (T, bool) {
	return helper.TypedValueOf[T](func() (any, bool) {
		v, ok := rec[key]
		return v, ok
	})
}

// MustGet is the panic-on-failure variant of Get.
func MustGet[T any](rec map[string]any, key string) T {
	return helper.MustTypedValue[T](func() (any, error) {
		v, ok := rec[key]
		if !ok {
			return nil, fmt.Errorf("record: no such key %q", key)
		}
		return v, nil
	})
}

func clone[K comparable, V any](rec map[K]V, extra int) map[K]V {
	next := make(map[K]V, len(rec)+extra)
	for k, v := range rec {
		next[k] = v
	}
	return next
}
