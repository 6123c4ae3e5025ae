package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

func TestPublicFeedUseCase_Execute_MarksViewerUpvotes(t *testing.T) {
	var gotFilter complaint.FeedFilter
	repo := &mockComplaintRepository{
		PublicFeedFunc: func(ctx context.Context, filter complaint.FeedFilter) ([]*complaint.FeedEntry, int64, error) {
			gotFilter = filter
			return []*complaint.FeedEntry{
				{Complaint: storedComplaint(1, vo.StatusSubmitted), UpvoteCount: 4},
				{Complaint: storedComplaint(2, vo.StatusResolved), UpvoteCount: 0},
			}, 2, nil
		},
	}
	var askedFor []uint
	upvotes := &mockUpvoteRepository{
		UpvotedAmongFunc: func(ctx context.Context, userID uint, ids []uint) (map[uint]bool, error) {
			askedFor = ids
			return map[uint]bool{1: true}, nil
		},
	}
	uc := NewPublicFeedUseCase(repo, upvotes, &mockImageStore{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), PublicFeedQuery{
		Category: "road",
		DateFrom: "2025-03-01",
		DateTo:   "2025-03-04",
		Sort:     "most_upvoted",
		Page:     1,
		PageSize: 20,
		ViewerID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Items, 2)
	assert.True(t, result.Items[0].IsUpvoted)
	assert.Equal(t, int64(4), result.Items[0].UpvoteCount)
	assert.False(t, result.Items[1].IsUpvoted)
	assert.Equal(t, []uint{1, 2}, askedFor)

	assert.Equal(t, complaint.FeedSortMostUpvoted, gotFilter.Sort)
	require.NotNil(t, gotFilter.Category)
	assert.Equal(t, vo.CategoryRoad, *gotFilter.Category)
	require.NotNil(t, gotFilter.CreatedFrom)
	require.NotNil(t, gotFilter.CreatedBefore)
	assert.Equal(t, 4*24*time.Hour, gotFilter.CreatedBefore.Sub(*gotFilter.CreatedFrom))
}

func TestPublicFeedUseCase_Execute_AnonymousSkipsUpvoteLookup(t *testing.T) {
	repo := &mockComplaintRepository{
		PublicFeedFunc: func(ctx context.Context, filter complaint.FeedFilter) ([]*complaint.FeedEntry, int64, error) {
			assert.Equal(t, complaint.FeedSortRecent, filter.Sort)
			return []*complaint.FeedEntry{{Complaint: storedComplaint(1, vo.StatusSubmitted), UpvoteCount: 1}}, 1, nil
		},
	}
	upvotes := &mockUpvoteRepository{
		UpvotedAmongFunc: func(ctx context.Context, userID uint, ids []uint) (map[uint]bool, error) {
			t.Fatal("anonymous viewers have no upvotes")
			return nil, nil
		},
	}
	uc := NewPublicFeedUseCase(repo, upvotes, &mockImageStore{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), PublicFeedQuery{Page: 1, PageSize: 20})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.False(t, result.Items[0].IsUpvoted)
}

func TestPublicFeedUseCase_Execute_ReportsEveryBadParameter(t *testing.T) {
	called := false
	repo := &mockComplaintRepository{
		PublicFeedFunc: func(ctx context.Context, filter complaint.FeedFilter) ([]*complaint.FeedEntry, int64, error) {
			called = true
			return nil, 0, nil
		},
	}
	uc := NewPublicFeedUseCase(repo, &mockUpvoteRepository{}, &mockImageStore{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), PublicFeedQuery{
		Category: "noise",
		Status:   "Closed",
		Sort:     "popular",
		DateFrom: "03/01/2025",
		DateTo:   "yesterday",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	details := errors.GetAppError(err).Details
	for _, field := range []string{"category:", "status:", "sort:", "date_from:", "date_to:"} {
		assert.Contains(t, details, field)
	}
	assert.False(t, called)
}
