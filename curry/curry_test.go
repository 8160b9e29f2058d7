package curry_test

import (
	"fmt"
	"testing"

	"github.com/fnground/fnkit/curry"

	"github.com/stretchr/testify/assert"
)

func TestCurry2(t *testing.T) {
	add := func(a, b int) int { return a + b }

	curried := curry.Curry2(add)
	assert.Equal(t, add(2, 3), curried(2)(3))
}

func TestCurry3(t *testing.T) {
	volume := func(l, w, h int) int { return l * w * h }

	curried := curry.Curry3(volume)
	assert.Equal(t, volume(2, 3, 4), curried(2)(3)(4))
}

func TestCurry4(t *testing.T) {
	join := func(a, b, c, d string) string { return a + b + c + d }

	curried := curry.Curry4(join)
	assert.Equal(t, join("a", "b", "c", "d"), curried("a")("b")("c")("d"))
}

func TestCurry5(t *testing.T) {
	sum := func(a, b, c, d, e int) int { return a + b + c + d + e }

	curried := curry.Curry5(sum)
	assert.Equal(t, sum(1, 2, 3, 4, 5), curried(1)(2)(3)(4)(5))
}

func TestCurry2_MixedTypes(t *testing.T) {
	describe := func(name string, age int) string {
		return fmt.Sprintf("%s is %d", name, age)
	}

	curried := curry.Curry2(describe)
	assert.Equal(t, "ada is 36", curried("ada")(36))
}

func TestCurry2_PartialReuse(t *testing.T) {
	mul := func(a, b int) int { return a * b }

	double := curry.Curry2(mul)(2)
	triple := curry.Curry2(mul)(3)

	assert.Equal(t, 10, double(5))
	assert.Equal(t, 15, triple(5))
}

func TestUncurry_RoundTrip(t *testing.T) {
	add3 := func(a, b, c int) int { return a + b + c }

	roundTripped := curry.Uncurry3(curry.Curry3(add3))
	assert.Equal(t, add3(1, 2, 3), roundTripped(1, 2, 3))
}

func TestUncurry2(t *testing.T) {
	curried := func(a int) func(int) int {
		return func(b int) int { return a - b }
	}

	assert.Equal(t, 4, curry.Uncurry2(curried)(7, 3))
}

func TestUncurry4(t *testing.T) {
	sum := func(a, b, c, d int) int { return a + b + c + d }

	roundTripped := curry.Uncurry4(curry.Curry4(sum))
	assert.Equal(t, 10, roundTripped(1, 2, 3, 4))
}

func TestUncurry5(t *testing.T) {
	sum := func(a, b, c, d, e int) int { return a + b + c + d + e }

	roundTripped := curry.Uncurry5(curry.Curry5(sum))
	assert.Equal(t, 15, roundTripped(1, 2, 3, 4, 5))
}

func TestPartial2(t *testing.T) {
	pow := func(base, exp int) int {
		result := 1
		for i := 0; i < exp; i++ {
			result *= base
		}
		return result
	}

	powersOfTwo := curry.Partial2(pow, 2)
	assert.Equal(t, 8, powersOfTwo(3))
}

func TestPartial3(t *testing.T) {
	clamp := func(lo, hi, v int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	clampNonNegative := curry.Partial3(clamp, 0)
	assert.Equal(t, 0, clampNonNegative(10, -5))
	assert.Equal(t, 7, clampNonNegative(10, 7))
	assert.Equal(t, 10, clampNonNegative(10, 99))
}
