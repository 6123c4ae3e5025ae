// Package ratelimit bounds request rates per client key, backed by Redis when it
// is enabled and by an in-process token bucket otherwise.
package ratelimit

import (
	"context"
	"time"
)

// Policy allows Requests per Window for each key.
type Policy struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}
