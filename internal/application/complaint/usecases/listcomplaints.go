package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// ListComplaintsQuery serves both the staff listing and "my complaints"; the latter
// sets SubmitterID.
type ListComplaintsQuery struct {
	Status       string
	Category     string
	DepartmentID *uint
	AssigneeID   *uint
	SubmitterID  *uint
	Page         int
	PageSize     int
}

type ListComplaintsResult struct {
	Complaints []*dto.ComplaintDTO
	Total      int64
	Page       int
	PageSize   int
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	refs          referenceResolver
	imageStore    ImageStore
	logger        logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.Repository,
	departmentRepo department.Repository,
	userRepo user.Repository,
	imageStore ImageStore,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		refs:          referenceResolver{departmentRepo: departmentRepo, userRepo: userRepo},
		imageStore:    imageStore,
		logger:        logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	filter := complaint.Filter{
		DepartmentID: query.DepartmentID,
		AssigneeID:   query.AssigneeID,
		UserID:       query.SubmitterID,
		Page:         query.Page,
		PageSize:     query.PageSize,
	}

	var details []string
	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			details = append(details, errors.FieldError("status", err.Error()))
		} else {
			filter.Status = &status
		}
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			details = append(details, errors.FieldError("category", err.Error()))
		} else {
			filter.Category = &category
		}
	}
	if len(details) > 0 {
		return nil, errors.NewValidationError("Invalid filter", details...)
	}

	list, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	refs, err := uc.refs.resolve(ctx, list...)
	if err != nil {
		uc.logger.Errorw("failed to resolve complaint references", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	return &ListComplaintsResult{
		Complaints: dto.ToComplaintDTOList(list, refs, uc.imageStore.URL),
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
