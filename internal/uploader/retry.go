package uploader

import (
	"context"
	"strings"
	"time"
)

// Default retry tuning: 3 attempts total with linear backoff (2s, 4s).
const (
	DefaultMaxAttempts = 3
	DefaultBackoffStep = 2 * time.Second
)

// RetryPolicy decouples retry decisions from the upload loop. Backoff
// receives the 1-based number of the attempt that just failed.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	IsRetryable func(err error) bool
}

// DefaultRetryPolicy retries only transient timeouts, waiting attempt x 2s
// between attempts.
func DefaultRetryPolicy() RetryPolicy {
	return NewLinearRetryPolicy(DefaultMaxAttempts, DefaultBackoffStep)
}

// NewLinearRetryPolicy builds a timeout-only policy with linear backoff.
func NewLinearRetryPolicy(maxAttempts int, step time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * step
		},
		IsRetryable: IsTimeoutError,
	}
}

// IsTimeoutError classifies an error as a transient timeout by the ingestion
// endpoint contract: any failure mentioning "timeout" may be retried.
func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

// sleepCtx waits for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
