// Package resilience bounds external calls with a per-attempt timeout and
// exponential-backoff retry. It is the only place in the pipeline where
// timeout/retry policy lives; every oracle call site goes through Do.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout indicates a guarded call exceeded its per-attempt budget.
	ErrTimeout = errors.New("guarded call timed out")

	// ErrRetryExhausted indicates all retry attempts failed; it wraps the
	// last attempt's error.
	ErrRetryExhausted = errors.New("retry attempts exhausted")
)

// Guard holds the retry policy applied to one class of external call.
type Guard struct {
	Timeout    time.Duration
	MaxRetries int
	Backoff    BackoffStrategy
}

// NewGuard returns a Guard with exponential backoff starting at baseDelay.
func NewGuard(timeout time.Duration, maxRetries int, baseDelay time.Duration) Guard {
	return Guard{
		Timeout:    timeout,
		MaxRetries: maxRetries,
		Backoff:    ExponentialBackoff(baseDelay),
	}
}

// Do runs fn under the guard's policy: each attempt gets its own timeout
// context, failures are retried up to MaxRetries times with backoff, and
// after exhaustion the last error is returned wrapped in ErrRetryExhausted.
// Attempts cut short by the per-attempt budget carry ErrTimeout. Parent
// context cancellation stops retrying immediately.
func Do[T any](ctx context.Context, g Guard, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := 1 + g.MaxRetries
	for i := 0; i < attempts; i++ {
		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})
		if g.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, g.Timeout)
		}

		result, err := fn(attemptCtx)
		if err == nil {
			cancel()
			return result, nil
		}

		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		cancel()
		lastErr = err

		// Parent canceled: no point retrying.
		if ctx.Err() != nil {
			break
		}

		if i < attempts-1 && g.Backoff != nil {
			select {
			case <-time.After(g.Backoff.Delay(i)):
			case <-ctx.Done():
				return zero, fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
			}
		}
	}

	return zero, fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
}
