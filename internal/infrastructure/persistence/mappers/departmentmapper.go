package mappers

import (
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
)

// DepartmentMapper converts departments and admin profiles.
type DepartmentMapper interface {
	ToModel(d *department.Department) *models.DepartmentModel
	ToDomain(model *models.DepartmentModel) *department.Department
	ProfileToModel(p *department.AdminProfile) *models.AdminProfileModel
	ProfileToDomain(model *models.AdminProfileModel) *department.AdminProfile
}

type DepartmentMapperImpl struct{}

func NewDepartmentMapper() DepartmentMapper {
	return &DepartmentMapperImpl{}
}

func (m *DepartmentMapperImpl) ToModel(d *department.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:          d.ID(),
		Name:        d.Name(),
		Slug:        d.Slug(),
		Description: d.Description(),
		Categories:  d.CategoriesString(),
		CreatedAt:   d.CreatedAt().UnixMilli(),
		UpdatedAt:   d.UpdatedAt().UnixMilli(),
	}
}

func (m *DepartmentMapperImpl) ToDomain(model *models.DepartmentModel) *department.Department {
	if model == nil {
		return nil
	}
	return department.ReconstructDepartment(
		model.ID,
		model.Name,
		model.Slug,
		model.Description,
		model.Categories,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *DepartmentMapperImpl) ProfileToModel(p *department.AdminProfile) *models.AdminProfileModel {
	return &models.AdminProfileModel{
		ID:           p.ID(),
		UserID:       p.UserID(),
		DepartmentID: p.DepartmentID(),
		Role:         p.Role().String(),
	}
}

func (m *DepartmentMapperImpl) ProfileToDomain(model *models.AdminProfileModel) *department.AdminProfile {
	if model == nil {
		return nil
	}
	return department.ReconstructAdminProfile(model.ID, model.UserID, model.DepartmentID, authorization.UserRole(model.Role))
}
