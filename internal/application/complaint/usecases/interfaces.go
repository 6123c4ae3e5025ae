package usecases

import (
	"context"
	"io"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
)

// TransactionRunner runs fn in a unit of work carried by the context.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}

// TextSanitizer strips markup from citizen input.
type TextSanitizer interface {
	PlainText(input string) string
}

type CreateComplaintExecutor interface {
	Execute(ctx context.Context, cmd CreateComplaintCommand) (*dto.ComplaintDTO, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type TrackComplaintExecutor interface {
	Execute(ctx context.Context, query TrackComplaintQuery) (*dto.ComplaintDTO, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type UpdateComplaintExecutor interface {
	Execute(ctx context.Context, cmd UpdateComplaintCommand) (*dto.ComplaintDTO, error)
}

type DeleteComplaintExecutor interface {
	Execute(ctx context.Context, cmd DeleteComplaintCommand) error
}

type AssignComplaintExecutor interface {
	Execute(ctx context.Context, cmd AssignComplaintCommand) (*dto.ComplaintDTO, error)
}

type PublicFeedExecutor interface {
	Execute(ctx context.Context, query PublicFeedQuery) (*PublicFeedResult, error)
}

type ToggleUpvoteExecutor interface {
	Execute(ctx context.Context, cmd ToggleUpvoteCommand) (*dto.UpvoteResultDTO, error)
}
