// Package ratelimit throttles ledger writes per caller with sliding windows.
package ratelimit

import (
	"context"
	"time"
)

// Limits caps requests per window. A zero field disables that window.
type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// IsZero reports whether no window is limited.
func (l Limits) IsZero() bool {
	return l.RequestsPerMinute <= 0 && l.RequestsPerHour <= 0
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it fits every window.
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	// Count returns the requests recorded for key inside window.
	Count(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
