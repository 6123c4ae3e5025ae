package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
)

// DescriptionRenderer turns a stored markdown description into safe HTML.
type DescriptionRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type CreateDepartmentExecutor interface {
	Execute(ctx context.Context, cmd CreateDepartmentCommand) (*dto.DepartmentDTO, error)
}

type UpdateDepartmentExecutor interface {
	Execute(ctx context.Context, cmd UpdateDepartmentCommand) (*dto.DepartmentDTO, error)
}

type DeleteDepartmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteDepartmentCommand) error
}

type GetDepartmentExecutor interface {
	Execute(ctx context.Context, query GetDepartmentQuery) (*dto.DepartmentDTO, error)
}

type ListDepartmentsExecutor interface {
	Execute(ctx context.Context) ([]*dto.DepartmentDTO, error)
}

type ListDepartmentAdminsExecutor interface {
	Execute(ctx context.Context, query ListDepartmentAdminsQuery) ([]dto.DepartmentAdminDTO, error)
}

type UpsertAdminProfileExecutor interface {
	Execute(ctx context.Context, cmd UpsertAdminProfileCommand) (*dto.AdminProfileDTO, error)
}
