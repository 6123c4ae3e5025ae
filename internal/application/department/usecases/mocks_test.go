package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type mockDepartmentRepository struct {
	CreateFunc   func(ctx context.Context, d *department.Department) error
	UpdateFunc   func(ctx context.Context, d *department.Department) error
	DeleteFunc   func(ctx context.Context, id uint) error
	GetByIDFunc  func(ctx context.Context, id uint) (*department.Department, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	ListFunc     func(ctx context.Context) ([]*department.Department, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*department.Department, error)
}

func (m *mockDepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDepartmentRepository) GetByID(ctx context.Context, id uint) (*department.Department, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, department.ErrDepartmentNotFound
}

func (m *mockDepartmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockDepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*department.Department, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*department.Department{}, nil
}

type mockAdminProfileRepository struct {
	SaveFunc             func(ctx context.Context, p *department.AdminProfile) error
	GetByUserIDFunc      func(ctx context.Context, userID uint) (*department.AdminProfile, error)
	ListByDepartmentFunc func(ctx context.Context, departmentID uint) ([]*department.AdminProfile, error)
}

func (m *mockAdminProfileRepository) Save(ctx context.Context, p *department.AdminProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockAdminProfileRepository) GetByUserID(ctx context.Context, userID uint) (*department.AdminProfile, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, department.ErrAdminProfileNotFound
}

func (m *mockAdminProfileRepository) ListByDepartment(ctx context.Context, departmentID uint) ([]*department.AdminProfile, error) {
	if m.ListByDepartmentFunc != nil {
		return m.ListByDepartmentFunc(ctx, departmentID)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc  func(ctx context.Context, id uint) (*user.Account, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*user.Account, error)
}

func (m *mockUserRepository) Create(ctx context.Context, a *user.Account) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, a *user.Account) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrAccountNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.Account, error) {
	return nil, user.ErrAccountNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.Account, error) {
	return nil, user.ErrAccountNotFound
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.Account, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*user.Account{}, nil
}

func (m *mockUserRepository) ListSuperusers(ctx context.Context) ([]*user.Account, error) {
	return nil, nil
}

type stubRenderer struct {
	fail bool
}

func (r stubRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if r.fail {
		return "", stderrors.New("render failed")
	}
	return "<p>" + markdown + "</p>", nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)           {}
func (nopLogger) Info(msg string, args ...any)            {}
func (nopLogger) Warn(msg string, args ...any)            {}
func (nopLogger) Error(msg string, args ...any)           {}
func (l nopLogger) With(args ...any) logger.Interface     { return l }
func (l nopLogger) Named(name string) logger.Interface    { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...any) {}
func (nopLogger) Infow(msg string, keysAndValues ...any)  {}
func (nopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (nopLogger) Errorw(msg string, keysAndValues ...any) {}
