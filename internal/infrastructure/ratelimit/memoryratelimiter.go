package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an untouched bucket is kept before sweeping.
const idleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryRateLimiter is a per-key token bucket. Limits are per process.
type MemoryRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func NewMemoryRateLimiter(policy Policy) *MemoryRateLimiter {
	limit := rate.Inf
	burst := 0
	if policy.Requests > 0 && policy.Window > 0 {
		limit = rate.Every(policy.Window / time.Duration(policy.Requests))
		burst = policy.Requests
	}
	return &MemoryRateLimiter{
		buckets:   make(map[string]*bucket),
		limit:     limit,
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	if now.Sub(l.lastSweep) > idleTTL {
		for k, v := range l.buckets {
			if now.Sub(v.lastSeen) > idleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	return b.limiter.AllowN(now, 1), nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.buckets, key)
	l.mu.Unlock()
	return nil
}
