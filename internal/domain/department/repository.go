package department

import (
	"context"
	"errors"
)

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDuplicateDepartment  = errors.New("department name or slug already exists")
	ErrAdminProfileNotFound = errors.New("admin profile not found")
)

type Repository interface {
	Create(ctx context.Context, d *Department) error
	Update(ctx context.Context, d *Department) error
	// Delete removes the department and nulls references to it from complaints and profiles.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Department, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]*Department, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Department, error)
}

type AdminProfileRepository interface {
	Save(ctx context.Context, p *AdminProfile) error
	GetByUserID(ctx context.Context, userID uint) (*AdminProfile, error)
	ListByDepartment(ctx context.Context, departmentID uint) ([]*AdminProfile, error)
}
