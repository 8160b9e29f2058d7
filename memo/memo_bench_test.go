package memo_test

import (
	"testing"

	"github.com/fnground/fnkit/memo"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var memoFib func(int) int
	memoFib = memo.Memoize1(func(n int) int {
		if n <= 1 {
			return n
		}
		return memoFib(n-1) + memoFib(n-2)
	}, 32)

	for i := 0; i < b.N; i++ {
		_ = memoFib(20)
	}
}

func BenchmarkMemoize2Hit(b *testing.B) {
	fn := memo.Memoize2(func(a, x int) int {
		return a*x + x
	}, 64)
	fn(3, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(3, 4)
	}
}
