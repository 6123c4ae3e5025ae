package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
)

func TestUpvoteRepository(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	complaints := NewComplaintRepository(gdb)
	repo := NewUpvoteRepository(gdb)

	c := newTestComplaint(t, "HA-2025-001", vo.CategoryStreetlight)
	require.NoError(t, complaints.Create(ctx, c))
	other := newTestComplaint(t, "HA-2025-002", vo.CategoryStreetlight)
	require.NoError(t, complaints.Create(ctx, other))
	voter := createTestAccount(t, gdb, "voter", false, false)

	up, err := complaint.NewUpvote(c.ID(), voter.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, up))

	t.Run("second insert hits the unique index", func(t *testing.T) {
		assert.ErrorIs(t, repo.Add(ctx, up), complaint.ErrUpvoteExists)
	})

	t.Run("exists and count", func(t *testing.T) {
		exists, err := repo.Exists(ctx, c.ID(), voter.ID())
		require.NoError(t, err)
		assert.True(t, exists)

		count, err := repo.Count(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("upvoted among", func(t *testing.T) {
		marked, err := repo.UpvotedAmong(ctx, voter.ID(), []uint{c.ID(), other.ID()})
		require.NoError(t, err)
		assert.True(t, marked[c.ID()])
		assert.False(t, marked[other.ID()])

		anonymous, err := repo.UpvotedAmong(ctx, 0, []uint{c.ID()})
		require.NoError(t, err)
		assert.Empty(t, anonymous)
	})

	t.Run("remove", func(t *testing.T) {
		removed, err := repo.Remove(ctx, c.ID(), voter.ID())
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Remove(ctx, c.ID(), voter.ID())
		require.NoError(t, err)
		assert.False(t, removed)

		count, err := repo.Count(ctx, c.ID())
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
