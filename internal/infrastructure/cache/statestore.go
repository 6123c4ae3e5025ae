// Package cache holds short-lived state kept outside the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

var ErrStateNotFound = errors.New("state not found or expired")

// StateInfo is what the OAuth callback needs back for a state value.
type StateInfo struct {
	CodeVerifier string    `json:"code_verifier"`
	CreatedAt    time.Time `json:"created_at"`
}

// StateStore keeps OAuth state values for one-time verification.
type StateStore interface {
	Set(ctx context.Context, state, codeVerifier string) error
	VerifyAndGet(ctx context.Context, state string) (*StateInfo, error)
}

func validateStateInput(state, codeVerifier string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if codeVerifier == "" {
		return errors.New("code_verifier cannot be empty")
	}
	return nil
}

type RedisStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStateStore) Set(ctx context.Context, state, codeVerifier string) error {
	if err := validateStateInput(state, codeVerifier); err != nil {
		return err
	}

	data, err := json.Marshal(StateInfo{CodeVerifier: codeVerifier, CreatedAt: biztime.NowUTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal state info: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+state, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store state in redis: %w", err)
	}
	return nil
}

// VerifyAndGet consumes the state with GETDEL so it can only be used once.
func (s *RedisStateStore) VerifyAndGet(ctx context.Context, state string) (*StateInfo, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	data, err := s.client.GetDel(ctx, s.prefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get state from redis: %w", err)
	}

	var info StateInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state info: %w", err)
	}
	return &info, nil
}

// MemoryStateStore is the single-process fallback when Redis is disabled.
type MemoryStateStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	states map[string]StateInfo
}

func NewMemoryStateStore(ttl time.Duration) *MemoryStateStore {
	return &MemoryStateStore{ttl: ttl, states: make(map[string]StateInfo)}
}

func (s *MemoryStateStore) Set(_ context.Context, state, codeVerifier string) error {
	if err := validateStateInput(state, codeVerifier); err != nil {
		return err
	}

	now := biztime.NowUTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.states {
		if now.Sub(v.CreatedAt) > s.ttl {
			delete(s.states, k)
		}
	}
	s.states[state] = StateInfo{CodeVerifier: codeVerifier, CreatedAt: now}
	return nil
}

func (s *MemoryStateStore) VerifyAndGet(_ context.Context, state string) (*StateInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.states[state]
	if !ok {
		return nil, ErrStateNotFound
	}
	delete(s.states, state)
	if biztime.NowUTC().Sub(info.CreatedAt) > s.ttl {
		return nil, ErrStateNotFound
	}
	return &info, nil
}
