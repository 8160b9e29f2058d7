package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Arg is an input to a memoized function: any comparable value, or a
// fmt.Stringer whose string form identifies it.
type Arg = any

func Memoize1[I1 Arg, O any](pureFn func(I1) O, maxSize uint32) func(I1) O {
	memoized := memoize(
		func(args ...Arg) O {
			return pureFn(args[0].(I1))
		},
		maxSize,
	)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

func Memoize2[I1, I2 Arg, O any](pureFn func(I1, I2) O, maxSize uint32) func(I1, I2) O {
	memoized := memoize(
		func(args ...Arg) O {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxSize,
	)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

func Memoize3[I1, I2, I3 Arg, O any](pureFn func(I1, I2, I3) O, maxSize uint32) func(I1, I2, I3) O {
	memoized := memoize(
		func(args ...Arg) O {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		maxSize,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}

type pair[O1, O2 any] struct {
	fst O1
	snd O2
}

func Memoize1x2[I1 Arg, O1, O2 any](pureFn func(I1) (O1, O2), maxSize uint32) func(I1) (O1, O2) {
	memoized := Memoize1(func(i1 I1) pair[O1, O2] {
		v1, v2 := pureFn(i1)
		return pair[O1, O2]{fst: v1, snd: v2}
	}, maxSize)
	return func(i1 I1) (O1, O2) {
		res := memoized(i1)
		return res.fst, res.snd
	}
}

func Memoize2x2[I1, I2 Arg, O1, O2 any](pureFn func(I1, I2) (O1, O2), maxSize uint32) func(I1, I2) (O1, O2) {
	memoized := Memoize2(func(i1 I1, i2 I2) pair[O1, O2] {
		v1, v2 := pureFn(i1, i2)
		return pair[O1, O2]{fst: v1, snd: v2}
	}, maxSize)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := memoized(i1, i2)
		return res.fst, res.snd
	}
}

// tableKey normalizes an argument into a comparable cache key.
// Stringer arguments are compacted to their xxhash digest.
func tableKey(arg Arg) Key {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return xxhash.Sum64String(stringer.String())
	}
	return arg
}

func memoize[O any](pureFn func(...Arg) O, maxSize uint32) func(...Arg) O {
	table := NewTable[O](maxSize)
	return func(args ...Arg) O {
		keys := make([]Key, len(args))
		for i, arg := range args {
			keys[i] = tableKey(arg)
		}
		v, ok := table.Load(keys)
		if !ok {
			v = pureFn(args...)
			table.Store(keys, v)
		}
		return v
	}
}
