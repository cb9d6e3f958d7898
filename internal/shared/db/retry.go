package db

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds how often a use case is re-run after an optimistic-lock conflict.
type RetryPolicy struct {
	MaxRetries uint64
	Backoff    time.Duration
}

// DefaultRetryPolicy allows three reruns after the first attempt.
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, Backoff: 10 * time.Millisecond}

// Retry runs fn and re-runs it while retryable(err) holds, up to
// policy.MaxRetries extra attempts. The last error is returned unchanged
// once the budget is exhausted.
//
// Inside an open transaction fn runs exactly once: re-reading within the same
// transaction cannot resolve a conflict, so the outermost caller owns the loop.
func Retry(ctx context.Context, policy RetryPolicy, retryable func(error) bool, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(policy.MaxRetries, retry.NewConstant(policy.backoff()))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (p RetryPolicy) backoff() time.Duration {
	if p.Backoff <= 0 {
		return time.Millisecond
	}
	return p.Backoff
}
