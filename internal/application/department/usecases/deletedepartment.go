package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type DeleteDepartmentCommand struct {
	ID uint
}

// DeleteDepartmentUseCase removes a department. Complaints and admin profiles that
// pointed at it keep existing with the reference cleared.
type DeleteDepartmentUseCase struct {
	departmentRepo department.Repository
	logger         logger.Interface
}

func NewDeleteDepartmentUseCase(departmentRepo department.Repository, logger logger.Interface) *DeleteDepartmentUseCase {
	return &DeleteDepartmentUseCase{departmentRepo: departmentRepo, logger: logger}
}

func (uc *DeleteDepartmentUseCase) Execute(ctx context.Context, cmd DeleteDepartmentCommand) error {
	if err := uc.departmentRepo.Delete(ctx, cmd.ID); err != nil {
		if stderrors.Is(err, department.ErrDepartmentNotFound) {
			return errors.NewNotFoundError("department not found")
		}
		uc.logger.Errorw("failed to delete department", "department_id", cmd.ID, "error", err)
		return errors.NewInternalError("failed to delete department")
	}
	uc.logger.Infow("department deleted", "department_id", cmd.ID)
	return nil
}
