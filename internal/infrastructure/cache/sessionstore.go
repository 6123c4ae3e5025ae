package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

// SessionStore records revoked token sessions until their last token would have
// expired anyway.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

func NewRedisSessionStore(client *redis.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{client: client, prefix: prefix}
}

func (s *RedisSessionStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if sessionID == "" {
		return errors.New("session id cannot be empty")
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.prefix+sessionID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, s.prefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session in redis: %w", err)
	}
	return n > 0, nil
}

// MemorySessionStore is the single-process fallback when Redis is disabled.
type MemorySessionStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{revoked: make(map[string]time.Time)}
}

func (s *MemorySessionStore) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	if sessionID == "" {
		return errors.New("session id cannot be empty")
	}
	if ttl <= 0 {
		return nil
	}

	now := biztime.NowUTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
		}
	}
	s.revoked[sessionID] = now.Add(ttl)
	return nil
}

func (s *MemorySessionStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[sessionID]
	if !ok {
		return false, nil
	}
	if !biztime.NowUTC().Before(until) {
		delete(s.revoked, sessionID)
		return false, nil
	}
	return true, nil
}
