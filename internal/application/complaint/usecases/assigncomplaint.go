package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// AssignComplaintCommand carries tri-state references: Keep, Clear or SetRef.
type AssignComplaintCommand struct {
	ComplaintID uint
	Department  complaint.RefChange
	AssignedTo  complaint.RefChange
	ActorID     uint
}

type AssignComplaintUseCase struct {
	complaintRepo  complaint.Repository
	departmentRepo department.Repository
	userRepo       user.Repository
	refs           referenceResolver
	imageStore     ImageStore
	dispatcher     events.EventPublisher
	logger         logger.Interface
}

func NewAssignComplaintUseCase(
	complaintRepo complaint.Repository,
	departmentRepo department.Repository,
	userRepo user.Repository,
	imageStore ImageStore,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{
		complaintRepo:  complaintRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		refs:           referenceResolver{departmentRepo: departmentRepo, userRepo: userRepo},
		imageStore:     imageStore,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (uc *AssignComplaintUseCase) Execute(ctx context.Context, cmd AssignComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing assign complaint use case",
		"id", cmd.ComplaintID,
		"department_present", cmd.Department.Present,
		"assignee_present", cmd.AssignedTo.Present,
		"actor_id", cmd.ActorID)

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		return nil, complaintLoadError(uc.logger, err, "id", cmd.ComplaintID)
	}

	// Every referenced row is checked before the complaint is touched.
	if err := uc.validateDepartment(ctx, cmd.Department); err != nil {
		return nil, err
	}
	if err := uc.validateAssignee(ctx, cmd.AssignedTo); err != nil {
		return nil, err
	}

	actor := cmd.ActorID
	advanced := c.Assign(cmd.Department, cmd.AssignedTo, &actor)

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to save assignment", "complaint_id", c.ComplaintID(), "error", err)
		return nil, errors.NewInternalError("failed to assign complaint")
	}

	publishEvents(uc.dispatcher, uc.logger, c)

	uc.logger.Infow("complaint assigned",
		"complaint_id", c.ComplaintID(),
		"department_id", c.AssignedDepartmentID(),
		"assigned_to", c.AssignedToID(),
		"status", c.Status(),
		"status_advanced", advanced)

	return renderComplaint(ctx, uc.refs, uc.imageStore, uc.logger, c)
}

func (uc *AssignComplaintUseCase) validateDepartment(ctx context.Context, change complaint.RefChange) error {
	if !change.Present || change.ID == nil {
		return nil
	}
	exists, err := uc.departmentRepo.Exists(ctx, *change.ID)
	if err != nil {
		uc.logger.Errorw("failed to check department", "department_id", *change.ID, "error", err)
		return errors.NewInternalError("failed to assign complaint")
	}
	if !exists {
		return errors.NewValidationError("Invalid department",
			errors.FieldError("assigned_department", fmt.Sprintf("Department with id %d does not exist", *change.ID)))
	}
	return nil
}

func (uc *AssignComplaintUseCase) validateAssignee(ctx context.Context, change complaint.RefChange) error {
	if !change.Present || change.ID == nil {
		return nil
	}
	account, err := uc.userRepo.GetByID(ctx, *change.ID)
	if err != nil {
		if stderrors.Is(err, user.ErrAccountNotFound) {
			return errors.NewValidationError("Invalid assignee",
				errors.FieldError("assigned_to", fmt.Sprintf("Staff user with id %d does not exist", *change.ID)))
		}
		uc.logger.Errorw("failed to load assignee", "user_id", *change.ID, "error", err)
		return errors.NewInternalError("failed to assign complaint")
	}
	if !account.IsStaff() {
		return errors.NewValidationError("Invalid assignee",
			errors.FieldError("assigned_to", fmt.Sprintf("Staff user with id %d does not exist", *change.ID)))
	}
	return nil
}
