package complaint

import (
	"context"
	"fmt"
	"time"

	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
)

// Repository persists complaints together with their images.
type Repository interface {
	// Create inserts c and its images, setting c's ID. A collision on the public
	// identifier is reported as ErrDuplicateComplaintID.
	Create(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	GetByComplaintID(ctx context.Context, complaintID string) (*Complaint, error)
	List(ctx context.Context, filter Filter) ([]*Complaint, int64, error)
	PublicFeed(ctx context.Context, filter FeedFilter) ([]*FeedEntry, int64, error)
}

// UpvoteRepository stores the (user, complaint) upvote relation.
type UpvoteRepository interface {
	Exists(ctx context.Context, complaintID, userID uint) (bool, error)
	// Add inserts the upvote, returning ErrUpvoteExists when the pair already exists.
	Add(ctx context.Context, upvote *Upvote) error
	Remove(ctx context.Context, complaintID, userID uint) (bool, error)
	Count(ctx context.Context, complaintID uint) (int64, error)
	// UpvotedAmong returns which of complaintIDs userID has upvoted.
	UpvotedAmong(ctx context.Context, userID uint, complaintIDs []uint) (map[uint]bool, error)
}

// Filter drives the staff listing.
type Filter struct {
	Status       *vo.Status
	Category     *vo.Category
	DepartmentID *uint
	AssigneeID   *uint
	UserID       *uint
	Page         int
	PageSize     int
}

// FeedSort orders the public feed.
type FeedSort string

const (
	FeedSortRecent      FeedSort = "recent"
	FeedSortOldest      FeedSort = "oldest"
	FeedSortMostUpvoted FeedSort = "most_upvoted"
)

func (s FeedSort) IsValid() bool {
	switch s {
	case FeedSortRecent, FeedSortOldest, FeedSortMostUpvoted:
		return true
	}
	return false
}

// ParseFeedSort defaults an empty value to recent.
func ParseFeedSort(s string) (FeedSort, error) {
	if s == "" {
		return FeedSortRecent, nil
	}
	fs := FeedSort(s)
	if !fs.IsValid() {
		return "", fmt.Errorf("invalid sort: %s", s)
	}
	return fs, nil
}

// FeedFilter selects public feed entries. CreatedFrom is inclusive and CreatedBefore
// exclusive, both in UTC.
type FeedFilter struct {
	Category      *vo.Category
	Status        *vo.Status
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
	Sort          FeedSort
	Page          int
	PageSize      int
}

// FeedEntry is a complaint with its aggregated upvote count.
type FeedEntry struct {
	Complaint   *Complaint
	UpvoteCount int64
}
