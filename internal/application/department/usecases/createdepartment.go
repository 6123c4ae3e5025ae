package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type CreateDepartmentCommand struct {
	Name        string
	Slug        string
	Description string
	Categories  []string
}

type CreateDepartmentUseCase struct {
	departmentRepo department.Repository
	renderer       DescriptionRenderer
	logger         logger.Interface
}

func NewCreateDepartmentUseCase(
	departmentRepo department.Repository,
	renderer DescriptionRenderer,
	logger logger.Interface,
) *CreateDepartmentUseCase {
	return &CreateDepartmentUseCase{
		departmentRepo: departmentRepo,
		renderer:       renderer,
		logger:         logger,
	}
}

func (uc *CreateDepartmentUseCase) Execute(ctx context.Context, cmd CreateDepartmentCommand) (*dto.DepartmentDTO, error) {
	uc.logger.Infow("executing create department use case", "name", cmd.Name)

	d, err := department.NewDepartment(cmd.Name, cmd.Slug, cmd.Description, cmd.Categories)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := uc.departmentRepo.Create(ctx, d); err != nil {
		if stderrors.Is(err, department.ErrDuplicateDepartment) {
			return nil, errors.NewConflictError("department already exists", errors.FieldError("slug", d.Slug()))
		}
		uc.logger.Errorw("failed to create department", "name", d.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create department")
	}

	uc.logger.Infow("department created", "department_id", d.ID(), "slug", d.Slug())
	return render(uc.renderer, uc.logger, d), nil
}
