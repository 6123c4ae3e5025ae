package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/infrastructure/database"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/db"
)

type DepartmentRepository struct {
	db     *gorm.DB
	mapper mappers.DepartmentMapper
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db:     db,
		mapper: mappers.NewDepartmentMapper(),
	}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	model := r.mapper.ToModel(d)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return department.ErrDuplicateDepartment
		}
		return fmt.Errorf("failed to create department: %w", err)
	}
	return d.SetID(model.ID)
}

func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	model := r.mapper.ToModel(d)
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.DepartmentModel{}).
		Where("id = ?", model.ID).
		Select("name", "slug", "description", "categories", "updated_at").
		Updates(model).Error
	if err != nil {
		if database.IsDuplicateKey(err) {
			return department.ErrDuplicateDepartment
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	return nil
}

// Delete nulls the department on complaints and admin profiles before removing it.
func (r *DepartmentRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ComplaintModel{}).
			Where("assigned_department_id = ?", id).
			Update("assigned_department_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach complaints: %w", err)
		}
		if err := tx.Model(&models.AdminProfileModel{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach admin profiles: %w", err)
		}

		result := tx.Delete(&models.DepartmentModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete department: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return department.ErrDepartmentNotFound
		}
		return nil
	})
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*department.Department, error) {
	var model models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *DepartmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.DepartmentModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check department: %w", err)
	}
	return count > 0, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	var rows []*models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	out := make([]*department.Department, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.ToDomain(row))
	}
	return out, nil
}

func (r *DepartmentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*department.Department, error) {
	result := make(map[uint]*department.Department, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	for _, row := range rows {
		result[row.ID] = r.mapper.ToDomain(row)
	}
	return result, nil
}

type AdminProfileRepository struct {
	db     *gorm.DB
	mapper mappers.DepartmentMapper
}

func NewAdminProfileRepository(db *gorm.DB) *AdminProfileRepository {
	return &AdminProfileRepository{
		db:     db,
		mapper: mappers.NewDepartmentMapper(),
	}
}

// Save inserts a new profile or updates the existing one for the same user.
func (r *AdminProfileRepository) Save(ctx context.Context, p *department.AdminProfile) error {
	model := r.mapper.ProfileToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if model.ID == 0 {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create admin profile: %w", err)
		}
		p.SetID(model.ID)
		return nil
	}

	if err := tx.Model(&models.AdminProfileModel{}).
		Where("id = ?", model.ID).
		Select("department_id", "role").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update admin profile: %w", err)
	}
	return nil
}

func (r *AdminProfileRepository) GetByUserID(ctx context.Context, userID uint) (*department.AdminProfile, error) {
	var model models.AdminProfileModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, department.ErrAdminProfileNotFound
		}
		return nil, fmt.Errorf("failed to get admin profile: %w", err)
	}
	return r.mapper.ProfileToDomain(&model), nil
}

func (r *AdminProfileRepository) ListByDepartment(ctx context.Context, departmentID uint) ([]*department.AdminProfile, error) {
	var rows []*models.AdminProfileModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("department_id = ?", departmentID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list admin profiles: %w", err)
	}

	out := make([]*department.AdminProfile, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.ProfileToDomain(row))
	}
	return out, nil
}
