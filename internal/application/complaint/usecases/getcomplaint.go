package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type GetComplaintQuery struct {
	ID uint
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	refs          referenceResolver
	imageStore    ImageStore
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	departmentRepo department.Repository,
	userRepo user.Repository,
	imageStore ImageStore,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		refs:          referenceResolver{departmentRepo: departmentRepo, userRepo: userRepo},
		imageStore:    imageStore,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error) {
	c, err := uc.complaintRepo.GetByID(ctx, query.ID)
	if err != nil {
		return nil, complaintLoadError(uc.logger, err, "id", query.ID)
	}
	return renderComplaint(ctx, uc.refs, uc.imageStore, uc.logger, c)
}

// complaintLoadError maps a repository miss to 404 and anything else to 500.
func complaintLoadError(log logger.Interface, err error, key string, value any) error {
	if stderrors.Is(err, complaint.ErrComplaintNotFound) {
		return errors.NewNotFoundError("complaint not found")
	}
	log.Errorw("failed to load complaint", key, value, "error", err)
	return errors.NewInternalError("failed to load complaint")
}

func renderComplaint(ctx context.Context, refs referenceResolver, store ImageStore, log logger.Interface, c *complaint.Complaint) (*dto.ComplaintDTO, error) {
	resolved, err := refs.resolve(ctx, c)
	if err != nil {
		log.Errorw("failed to resolve complaint references", "complaint_id", c.ComplaintID(), "error", err)
		return nil, errors.NewInternalError("failed to load complaint")
	}
	return dto.ToComplaintDTO(c, resolved, store.URL), nil
}
