package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type GetDepartmentQuery struct {
	ID uint
}

type GetDepartmentUseCase struct {
	departmentRepo department.Repository
	renderer       DescriptionRenderer
	logger         logger.Interface
}

func NewGetDepartmentUseCase(departmentRepo department.Repository, renderer DescriptionRenderer, logger logger.Interface) *GetDepartmentUseCase {
	return &GetDepartmentUseCase{departmentRepo: departmentRepo, renderer: renderer, logger: logger}
}

func (uc *GetDepartmentUseCase) Execute(ctx context.Context, query GetDepartmentQuery) (*dto.DepartmentDTO, error) {
	d, err := uc.departmentRepo.GetByID(ctx, query.ID)
	if err != nil {
		return nil, departmentLoadError(uc.logger, err, query.ID)
	}
	return render(uc.renderer, uc.logger, d), nil
}

type ListDepartmentsUseCase struct {
	departmentRepo department.Repository
	renderer       DescriptionRenderer
	logger         logger.Interface
}

func NewListDepartmentsUseCase(departmentRepo department.Repository, renderer DescriptionRenderer, logger logger.Interface) *ListDepartmentsUseCase {
	return &ListDepartmentsUseCase{departmentRepo: departmentRepo, renderer: renderer, logger: logger}
}

func (uc *ListDepartmentsUseCase) Execute(ctx context.Context) ([]*dto.DepartmentDTO, error) {
	list, err := uc.departmentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "error", err)
		return nil, errors.NewInternalError("failed to list departments")
	}

	out := make([]*dto.DepartmentDTO, 0, len(list))
	for _, d := range list {
		out = append(out, render(uc.renderer, uc.logger, d))
	}
	return out, nil
}
