package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
)

type ListDepartmentAdminsQuery struct {
	DepartmentID uint
}

type ListDepartmentAdminsUseCase struct {
	departmentRepo department.Repository
	profileRepo    department.AdminProfileRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewListDepartmentAdminsUseCase(
	departmentRepo department.Repository,
	profileRepo department.AdminProfileRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListDepartmentAdminsUseCase {
	return &ListDepartmentAdminsUseCase{
		departmentRepo: departmentRepo,
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *ListDepartmentAdminsUseCase) Execute(ctx context.Context, query ListDepartmentAdminsQuery) ([]dto.DepartmentAdminDTO, error) {
	exists, err := uc.departmentRepo.Exists(ctx, query.DepartmentID)
	if err != nil {
		uc.logger.Errorw("failed to check department", "department_id", query.DepartmentID, "error", err)
		return nil, errors.NewInternalError("failed to list department admins")
	}
	if !exists {
		return nil, errors.NewNotFoundError("department not found")
	}

	profiles, err := uc.profileRepo.ListByDepartment(ctx, query.DepartmentID)
	if err != nil {
		uc.logger.Errorw("failed to list admin profiles", "department_id", query.DepartmentID, "error", err)
		return nil, errors.NewInternalError("failed to list department admins")
	}
	if len(profiles) == 0 {
		return []dto.DepartmentAdminDTO{}, nil
	}

	ids := mapper.MapSlice(profiles, func(p *department.AdminProfile) uint { return p.UserID() })
	accounts, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load admin accounts", "department_id", query.DepartmentID, "error", err)
		return nil, errors.NewInternalError("failed to list department admins")
	}

	out := make([]dto.DepartmentAdminDTO, 0, len(profiles))
	for _, p := range profiles {
		a, ok := accounts[p.UserID()]
		if !ok || !a.IsActive() {
			continue
		}
		out = append(out, dto.ToDepartmentAdminDTO(p, a))
	}
	return out, nil
}
