package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter keeps a sliding window of request timestamps in a sorted set per key.
type RedisRateLimiter struct {
	client *redis.Client
	policy Policy
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, policy Policy) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		policy: policy,
		prefix: "civicdesk:ratelimit",
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.policy.Requests <= 0 {
		return true, nil
	}

	now := time.Now()
	redisKey := l.key(key)
	windowStart := now.Add(-l.policy.Window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, l.policy.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val() < int64(l.policy.Requests), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit for %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) key(identifier string) string {
	return fmt.Sprintf("%s:%s:%s", l.prefix, identifier, l.policy.Window.String())
}
