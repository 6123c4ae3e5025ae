package complaint

import (
	"fmt"
	"time"
)

// Upvote records one user's support for one complaint.
type Upvote struct {
	complaintID uint
	userID      uint
	createdAt   time.Time
}

func NewUpvote(complaintID, userID uint) (*Upvote, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Upvote{complaintID: complaintID, userID: userID, createdAt: time.Now().UTC()}, nil
}

func (u *Upvote) ComplaintID() uint    { return u.complaintID }
func (u *Upvote) UserID() uint         { return u.userID }
func (u *Upvote) CreatedAt() time.Time { return u.createdAt }
