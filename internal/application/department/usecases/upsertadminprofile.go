package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// UpsertAdminProfileCommand sets the department and admin role of a staff account.
// A nil DepartmentID detaches the account from any department.
type UpsertAdminProfileCommand struct {
	UserID       uint
	DepartmentID *uint
	Role         string
}

type UpsertAdminProfileUseCase struct {
	departmentRepo department.Repository
	profileRepo    department.AdminProfileRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewUpsertAdminProfileUseCase(
	departmentRepo department.Repository,
	profileRepo department.AdminProfileRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpsertAdminProfileUseCase {
	return &UpsertAdminProfileUseCase{
		departmentRepo: departmentRepo,
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *UpsertAdminProfileUseCase) Execute(ctx context.Context, cmd UpsertAdminProfileCommand) (*dto.AdminProfileDTO, error) {
	uc.logger.Infow("executing upsert admin profile use case", "user_id", cmd.UserID, "role", cmd.Role)

	role := authorization.UserRole(cmd.Role)
	if cmd.Role != "" && !role.IsAdminProfileRole() {
		return nil, errors.NewValidationError("Validation failed",
			errors.FieldError("role", fmt.Sprintf(`"%s" is not a valid choice`, cmd.Role)))
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrAccountNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to load account", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to save admin profile")
	}
	if !account.IsStaff() {
		return nil, errors.NewValidationError("Validation failed",
			errors.FieldError("user", "admin profiles are only available for staff accounts"))
	}

	if cmd.DepartmentID != nil {
		exists, err := uc.departmentRepo.Exists(ctx, *cmd.DepartmentID)
		if err != nil {
			uc.logger.Errorw("failed to check department", "department_id", *cmd.DepartmentID, "error", err)
			return nil, errors.NewInternalError("failed to save admin profile")
		}
		if !exists {
			return nil, errors.NewValidationError("Validation failed",
				errors.FieldError("department", fmt.Sprintf("Department with id %d does not exist", *cmd.DepartmentID)))
		}
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	switch {
	case err == nil:
		if err := profile.Reassign(cmd.DepartmentID, role); err != nil {
			return nil, errors.NewValidationError("Validation failed", errors.FieldError("role", err.Error()))
		}
	case stderrors.Is(err, department.ErrAdminProfileNotFound):
		profile, err = department.NewAdminProfile(cmd.UserID, cmd.DepartmentID, role)
		if err != nil {
			return nil, errors.NewValidationError("Validation failed", errors.FieldError("role", err.Error()))
		}
	default:
		uc.logger.Errorw("failed to load admin profile", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to save admin profile")
	}

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		uc.logger.Errorw("failed to save admin profile", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to save admin profile")
	}

	uc.logger.Infow("admin profile saved",
		"user_id", cmd.UserID,
		"department_id", profile.DepartmentID(),
		"role", profile.Role())
	return dto.ToAdminProfileDTO(profile, account), nil
}
