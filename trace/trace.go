// Package trace instruments pure functions with structured logging.
//
// Instrument wraps a function so every application emits one zap entry
// carrying the function's name, a per-instrumentation id, and the observed
// timespan of the call. Logging happens synchronously in the caller's
// goroutine; the wrapped function itself is untouched.
package trace

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

type TimeSpan = timespan.TimeSpan

// During runs fn and returns the timespan it occupied.
func During(fn func()) TimeSpan {
	start := time.Now()
	fn()
	return timespan.BetweenTimes(start, time.Now())
}

const epsilon = time.Millisecond

// Now returns a timespan bracketing the current instant.
func Now() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}

// Instrument wraps a unary function with call logging. Each wrapper gets
// its own id so entries from distinct instrumentations of the same
// function stay distinguishable.
func Instrument[I, O any](logger *zap.Logger, name string, fn func(I) O) func(I) O {
	fnId := uuid.New().String()
	return func(i I) O {
		var out O
		span := During(func() {
			out = fn(i)
		})
		logger.Debug("function applied",
			zap.String("fn", name),
			zap.String("fnId", fnId),
			zap.Time("start", span.Start()),
			zap.Duration("elapsed", span.Duration()),
		)
		return out
	}
}

// Instrument2 is Instrument for binary functions.
func Instrument2[I1, I2, O any](logger *zap.Logger, name string, fn func(I1, I2) O) func(I1, I2) O {
	fnId := uuid.New().String()
	return func(i1 I1, i2 I2) O {
		var out O
		span := During(func() {
			out = fn(i1, i2)
		})
		logger.Debug("function applied",
			zap.String("fn", name),
			zap.String("fnId", fnId),
			zap.Time("start", span.Start()),
			zap.Duration("elapsed", span.Duration()),
		)
		return out
	}
}
