package usecases

import (
	"context"
	"strings"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type TrackComplaintQuery struct {
	ComplaintID string
}

// TrackComplaintUseCase lets anyone holding a public identifier follow its progress.
type TrackComplaintUseCase struct {
	complaintRepo complaint.Repository
	refs          referenceResolver
	imageStore    ImageStore
	logger        logger.Interface
}

func NewTrackComplaintUseCase(
	complaintRepo complaint.Repository,
	departmentRepo department.Repository,
	userRepo user.Repository,
	imageStore ImageStore,
	logger logger.Interface,
) *TrackComplaintUseCase {
	return &TrackComplaintUseCase{
		complaintRepo: complaintRepo,
		refs:          referenceResolver{departmentRepo: departmentRepo, userRepo: userRepo},
		imageStore:    imageStore,
		logger:        logger,
	}
}

func (uc *TrackComplaintUseCase) Execute(ctx context.Context, query TrackComplaintQuery) (*dto.ComplaintDTO, error) {
	id := strings.ToUpper(strings.TrimSpace(query.ComplaintID))
	if id == "" {
		return nil, errors.NewValidationError("complaint id is required", errors.FieldError("complaint_id", "this field is required"))
	}

	c, err := uc.complaintRepo.GetByComplaintID(ctx, id)
	if err != nil {
		return nil, complaintLoadError(uc.logger, err, "complaint_id", id)
	}
	return renderComplaint(ctx, uc.refs, uc.imageStore, uc.logger, c)
}
