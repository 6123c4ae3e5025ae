package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type UpdateDepartmentCommand struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	Categories  []string
}

type UpdateDepartmentUseCase struct {
	departmentRepo department.Repository
	renderer       DescriptionRenderer
	logger         logger.Interface
}

func NewUpdateDepartmentUseCase(
	departmentRepo department.Repository,
	renderer DescriptionRenderer,
	logger logger.Interface,
) *UpdateDepartmentUseCase {
	return &UpdateDepartmentUseCase{
		departmentRepo: departmentRepo,
		renderer:       renderer,
		logger:         logger,
	}
}

func (uc *UpdateDepartmentUseCase) Execute(ctx context.Context, cmd UpdateDepartmentCommand) (*dto.DepartmentDTO, error) {
	uc.logger.Infow("executing update department use case", "department_id", cmd.ID)

	d, err := uc.departmentRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, departmentLoadError(uc.logger, err, cmd.ID)
	}

	if err := d.Update(cmd.Name, cmd.Slug, cmd.Description, cmd.Categories); err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := uc.departmentRepo.Update(ctx, d); err != nil {
		switch {
		case stderrors.Is(err, department.ErrDuplicateDepartment):
			return nil, errors.NewConflictError("department already exists", errors.FieldError("slug", d.Slug()))
		case stderrors.Is(err, department.ErrDepartmentNotFound):
			return nil, errors.NewNotFoundError("department not found")
		}
		uc.logger.Errorw("failed to update department", "department_id", cmd.ID, "error", err)
		return nil, errors.NewInternalError("failed to update department")
	}

	return render(uc.renderer, uc.logger, d), nil
}
