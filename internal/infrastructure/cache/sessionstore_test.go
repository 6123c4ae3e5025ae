package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_Revoke(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	revoked, err := store.IsRevoked(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "session-1", time.Minute))

	revoked, err = store.IsRevoked(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "session-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemorySessionStore_ExpiresWithToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	require.NoError(t, store.Revoke(ctx, "session-1", time.Nanosecond))
	time.Sleep(time.Millisecond)

	revoked, err := store.IsRevoked(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "session-2", 0))
	revoked, err = store.IsRevoked(ctx, "session-2")
	require.NoError(t, err)
	assert.False(t, revoked, "an already expired session needs no entry")

	assert.Error(t, store.Revoke(ctx, "", time.Minute))
}

func TestRedisSessionStore_Revoke(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	store := NewRedisSessionStore(client, "test:session:revoked:")

	revoked, err := store.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "abc", time.Minute))

	revoked, err = store.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)
}
