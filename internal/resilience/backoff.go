package resilience

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffStrategy determines the delay before each retry attempt.
//
// Pattern: Strategy. Swap backoff algorithms without touching retry logic.
type BackoffStrategy interface {
	// Delay returns the duration to wait before the given retry attempt
	// (0-indexed: attempt 0 is the delay before the first retry).
	Delay(attempt int) time.Duration
}

// BackoffFunc adapts an ordinary function into a BackoffStrategy.
type BackoffFunc func(attempt int) time.Duration

// Delay calls the underlying function.
func (f BackoffFunc) Delay(attempt int) time.Duration { return f(attempt) }

type constantBackoff struct {
	d time.Duration
}

func (b constantBackoff) Delay(int) time.Duration { return b.d }

// ConstantBackoff returns a strategy with a fixed delay for every attempt.
func ConstantBackoff(d time.Duration) BackoffStrategy {
	return constantBackoff{d: d}
}

type exponentialBackoff struct {
	base time.Duration
}

func (b exponentialBackoff) Delay(attempt int) time.Duration {
	return time.Duration(float64(b.base) * math.Pow(2, float64(attempt)))
}

// ExponentialBackoff returns a strategy whose delay doubles with each
// attempt: base * 2^attempt.
func ExponentialBackoff(base time.Duration) BackoffStrategy {
	return exponentialBackoff{base: base}
}

type exponentialJitterBackoff struct {
	base time.Duration
}

func (b exponentialJitterBackoff) Delay(attempt int) time.Duration {
	max := int64(float64(b.base) * math.Pow(2, float64(attempt)))
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(max + 1))
}

// ExponentialJitterBackoff returns a strategy whose delay is uniformly
// distributed in [0, base * 2^attempt], spreading concurrent retries apart.
func ExponentialJitterBackoff(base time.Duration) BackoffStrategy {
	return exponentialJitterBackoff{base: base}
}
