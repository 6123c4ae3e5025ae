package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// PublicFeedQuery filters the citizen-facing feed. DateFrom and DateTo are inclusive
// calendar days (YYYY-MM-DD) in the business timezone. ViewerID is zero for anonymous
// viewers.
type PublicFeedQuery struct {
	Category string
	Status   string
	DateFrom string
	DateTo   string
	Sort     string
	Page     int
	PageSize int
	ViewerID uint
}

type PublicFeedResult struct {
	Items    []dto.FeedItemDTO
	Total    int64
	Page     int
	PageSize int
}

type PublicFeedUseCase struct {
	complaintRepo complaint.Repository
	upvoteRepo    complaint.UpvoteRepository
	imageStore    ImageStore
	logger        logger.Interface
}

func NewPublicFeedUseCase(
	complaintRepo complaint.Repository,
	upvoteRepo complaint.UpvoteRepository,
	imageStore ImageStore,
	logger logger.Interface,
) *PublicFeedUseCase {
	return &PublicFeedUseCase{
		complaintRepo: complaintRepo,
		upvoteRepo:    upvoteRepo,
		imageStore:    imageStore,
		logger:        logger,
	}
}

func (uc *PublicFeedUseCase) Execute(ctx context.Context, query PublicFeedQuery) (*PublicFeedResult, error) {
	filter, err := buildFeedFilter(query)
	if err != nil {
		return nil, err
	}

	entries, total, err := uc.complaintRepo.PublicFeed(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load public feed", "sort", filter.Sort, "error", err)
		return nil, errors.NewInternalError("failed to load feed")
	}

	upvoted := map[uint]bool{}
	if query.ViewerID != 0 && len(entries) > 0 {
		ids := make([]uint, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.Complaint.ID())
		}
		upvoted, err = uc.upvoteRepo.UpvotedAmong(ctx, query.ViewerID, ids)
		if err != nil {
			uc.logger.Errorw("failed to load viewer upvotes", "user_id", query.ViewerID, "error", err)
			return nil, errors.NewInternalError("failed to load feed")
		}
	}

	items := make([]dto.FeedItemDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ToFeedItemDTO(e, upvoted[e.Complaint.ID()], uc.imageStore.URL))
	}

	return &PublicFeedResult{
		Items:    items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// buildFeedFilter validates every parameter and reports all problems at once.
func buildFeedFilter(query PublicFeedQuery) (complaint.FeedFilter, error) {
	filter := complaint.FeedFilter{Page: query.Page, PageSize: query.PageSize}
	var details []string

	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			details = append(details, errors.FieldError("category", err.Error()))
		} else {
			filter.Category = &category
		}
	}
	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			details = append(details, errors.FieldError("status", err.Error()))
		} else {
			filter.Status = &status
		}
	}

	sort, err := complaint.ParseFeedSort(query.Sort)
	if err != nil {
		details = append(details, errors.FieldError("sort", "must be one of recent, oldest, most_upvoted"))
	}
	filter.Sort = sort

	if query.DateFrom != "" {
		from, err := biztime.ParseDate(query.DateFrom)
		if err != nil {
			details = append(details, errors.FieldError("date_from", "expected YYYY-MM-DD"))
		} else {
			filter.CreatedFrom = &from
		}
	}
	if query.DateTo != "" {
		to, err := biztime.ParseDate(query.DateTo)
		if err != nil {
			details = append(details, errors.FieldError("date_to", "expected YYYY-MM-DD"))
		} else {
			before := biztime.NextDayUTC(to)
			filter.CreatedBefore = &before
		}
	}

	if len(details) > 0 {
		return filter, errors.NewValidationError("Invalid feed parameters", details...)
	}
	return filter, nil
}
