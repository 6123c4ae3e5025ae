package complaint

import "errors"

var (
	ErrComplaintNotFound = errors.New("complaint not found")

	// ErrDuplicateComplaintID is returned by the store when an insert collides on complaint_id.
	ErrDuplicateComplaintID = errors.New("complaint id already exists")

	// ErrUpvoteExists is returned when the (user, complaint) upvote row is already present.
	ErrUpvoteExists = errors.New("upvote already exists")

	ErrIdentifierImmutable = errors.New("complaint id cannot change after the complaint is stored")

	// ErrInvalidImage is the root of every rejected upload.
	ErrInvalidImage = errors.New("invalid image")
)
