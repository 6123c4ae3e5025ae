package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type DeleteComplaintCommand struct {
	ID      uint
	ActorID uint
}

type DeleteComplaintUseCase struct {
	complaintRepo complaint.Repository
	imageStore    ImageStore
	logger        logger.Interface
}

func NewDeleteComplaintUseCase(
	complaintRepo complaint.Repository,
	imageStore ImageStore,
	logger logger.Interface,
) *DeleteComplaintUseCase {
	return &DeleteComplaintUseCase{
		complaintRepo: complaintRepo,
		imageStore:    imageStore,
		logger:        logger,
	}
}

// Execute removes the complaint with its images and upvotes, then the image files.
func (uc *DeleteComplaintUseCase) Execute(ctx context.Context, cmd DeleteComplaintCommand) error {
	c, err := uc.complaintRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return complaintLoadError(uc.logger, err, "id", cmd.ID)
	}

	if err := uc.complaintRepo.Delete(ctx, cmd.ID); err != nil {
		if stderrors.Is(err, complaint.ErrComplaintNotFound) {
			return errors.NewNotFoundError("complaint not found")
		}
		uc.logger.Errorw("failed to delete complaint", "id", cmd.ID, "error", err)
		return errors.NewInternalError("failed to delete complaint")
	}

	refs := make([]string, 0, len(c.Images())+1)
	if c.Image() != "" {
		refs = append(refs, c.Image())
	}
	for _, img := range c.Images() {
		refs = append(refs, img.Path())
	}
	for _, ref := range refs {
		if err := uc.imageStore.Delete(ctx, ref); err != nil {
			uc.logger.Warnw("failed to remove complaint image", "ref", ref, "error", err)
		}
	}

	uc.logger.Infow("complaint deleted", "complaint_id", c.ComplaintID(), "actor_id", cmd.ActorID)
	return nil
}
