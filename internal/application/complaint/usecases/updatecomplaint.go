package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// UpdateComplaintCommand carries a partial update; nil fields are left alone.
type UpdateComplaintCommand struct {
	ID          uint
	Title       *string
	Description *string
	Location    *string
	Category    *string
	Status      *string
	ActorID     uint
	ActorRole   authorization.UserRole
}

type UpdateComplaintUseCase struct {
	complaintRepo complaint.Repository
	refs          referenceResolver
	imageStore    ImageStore
	sanitizer     TextSanitizer
	dispatcher    events.EventPublisher
	logger        logger.Interface
}

func NewUpdateComplaintUseCase(
	complaintRepo complaint.Repository,
	departmentRepo department.Repository,
	userRepo user.Repository,
	imageStore ImageStore,
	sanitizer TextSanitizer,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *UpdateComplaintUseCase {
	return &UpdateComplaintUseCase{
		complaintRepo: complaintRepo,
		refs:          referenceResolver{departmentRepo: departmentRepo, userRepo: userRepo},
		imageStore:    imageStore,
		sanitizer:     sanitizer,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

func (uc *UpdateComplaintUseCase) Execute(ctx context.Context, cmd UpdateComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing update complaint use case", "id", cmd.ID, "actor_id", cmd.ActorID)

	update, status, err := uc.parse(cmd)
	if err != nil {
		return nil, err
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, complaintLoadError(uc.logger, err, "id", cmd.ID)
	}

	if !update.IsEmpty() {
		if err := c.UpdateDetails(update); err != nil {
			return nil, errors.NewValidationError("Validation failed", err.Error())
		}
	}

	if status != nil {
		actor := cmd.ActorID
		if _, err := c.ChangeStatus(*status, cmd.ActorRole.IsSuperAdmin(), &actor); err != nil {
			uc.logger.Warnw("rejected status change",
				"complaint_id", c.ComplaintID(),
				"from", c.Status(),
				"to", *status,
				"actor_role", cmd.ActorRole)
			return nil, errors.NewValidationError("Invalid status change", errors.FieldError("status", err.Error()))
		}
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "complaint_id", c.ComplaintID(), "error", err)
		return nil, errors.NewInternalError("failed to update complaint")
	}

	publishEvents(uc.dispatcher, uc.logger, c)

	uc.logger.Infow("complaint updated", "complaint_id", c.ComplaintID(), "status", c.Status())
	return renderComplaint(ctx, uc.refs, uc.imageStore, uc.logger, c)
}

func (uc *UpdateComplaintUseCase) parse(cmd UpdateComplaintCommand) (complaint.DetailsUpdate, *vo.Status, error) {
	var details []string
	update := complaint.DetailsUpdate{
		Title:       uc.clean(cmd.Title),
		Description: uc.clean(cmd.Description),
		Location:    uc.clean(cmd.Location),
	}

	if cmd.Category != nil {
		category, err := vo.NewCategory(*cmd.Category)
		if err != nil {
			details = append(details, errors.FieldError("category", `"`+*cmd.Category+`" is not a valid choice`))
		} else {
			update.Category = &category
		}
	}

	var status *vo.Status
	if cmd.Status != nil {
		s, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			details = append(details, errors.FieldError("status", `"`+*cmd.Status+`" is not a valid choice`))
		} else {
			status = &s
		}
	}

	if len(details) > 0 {
		return update, nil, errors.NewValidationError("Validation failed", details...)
	}
	return update, status, nil
}

func (uc *UpdateComplaintUseCase) clean(s *string) *string {
	if s == nil {
		return nil
	}
	out := uc.sanitizer.PlainText(*s)
	return &out
}
