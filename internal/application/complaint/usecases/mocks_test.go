package usecases

import (
	"context"
	"io"
	"time"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type mockComplaintRepository struct {
	CreateFunc           func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc           func(ctx context.Context, c *complaint.Complaint) error
	DeleteFunc           func(ctx context.Context, id uint) error
	GetByIDFunc          func(ctx context.Context, id uint) (*complaint.Complaint, error)
	GetByComplaintIDFunc func(ctx context.Context, complaintID string) (*complaint.Complaint, error)
	ListFunc             func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error)
	PublicFeedFunc       func(ctx context.Context, filter complaint.FeedFilter) ([]*complaint.FeedEntry, int64, error)
}

func (m *mockComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, complaint.ErrComplaintNotFound
}

func (m *mockComplaintRepository) GetByComplaintID(ctx context.Context, complaintID string) (*complaint.Complaint, error) {
	if m.GetByComplaintIDFunc != nil {
		return m.GetByComplaintIDFunc(ctx, complaintID)
	}
	return nil, complaint.ErrComplaintNotFound
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockComplaintRepository) PublicFeed(ctx context.Context, filter complaint.FeedFilter) ([]*complaint.FeedEntry, int64, error) {
	if m.PublicFeedFunc != nil {
		return m.PublicFeedFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockUpvoteRepository struct {
	ExistsFunc       func(ctx context.Context, complaintID, userID uint) (bool, error)
	AddFunc          func(ctx context.Context, upvote *complaint.Upvote) error
	RemoveFunc       func(ctx context.Context, complaintID, userID uint) (bool, error)
	CountFunc        func(ctx context.Context, complaintID uint) (int64, error)
	UpvotedAmongFunc func(ctx context.Context, userID uint, complaintIDs []uint) (map[uint]bool, error)
}

func (m *mockUpvoteRepository) Exists(ctx context.Context, complaintID, userID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, complaintID, userID)
	}
	return false, nil
}

func (m *mockUpvoteRepository) Add(ctx context.Context, upvote *complaint.Upvote) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, upvote)
	}
	return nil
}

func (m *mockUpvoteRepository) Remove(ctx context.Context, complaintID, userID uint) (bool, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, complaintID, userID)
	}
	return true, nil
}

func (m *mockUpvoteRepository) Count(ctx context.Context, complaintID uint) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, complaintID)
	}
	return 0, nil
}

func (m *mockUpvoteRepository) UpvotedAmong(ctx context.Context, userID uint, complaintIDs []uint) (map[uint]bool, error) {
	if m.UpvotedAmongFunc != nil {
		return m.UpvotedAmongFunc(ctx, userID, complaintIDs)
	}
	return map[uint]bool{}, nil
}

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

type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, a *user.Account) error
	UpdateFunc         func(ctx context.Context, a *user.Account) error
	GetByIDFunc        func(ctx context.Context, id uint) (*user.Account, error)
	GetByUsernameFunc  func(ctx context.Context, username string) (*user.Account, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*user.Account, error)
	GetByIDsFunc       func(ctx context.Context, ids []uint) (map[uint]*user.Account, error)
	ListSuperusersFunc func(ctx context.Context) ([]*user.Account, error)
}

func (m *mockUserRepository) Create(ctx context.Context, a *user.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, a *user.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrAccountNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, user.ErrAccountNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrAccountNotFound
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.Account, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*user.Account{}, nil
}

func (m *mockUserRepository) ListSuperusers(ctx context.Context) ([]*user.Account, error) {
	if m.ListSuperusersFunc != nil {
		return m.ListSuperusersFunc(ctx)
	}
	return nil, nil
}

type mockIdentifierGenerator struct {
	NextFunc func(ctx context.Context, year int) (string, error)
}

func (m *mockIdentifierGenerator) Next(ctx context.Context, year int) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, year)
	}
	return "HA-2025-001", nil
}

// passthroughTx runs fn directly on the caller's context.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type mockImageStore struct {
	SaveFunc   func(ctx context.Context, filename string, r io.Reader) (string, error)
	DeleteFunc func(ctx context.Context, ref string) error
	deleted    []string
}

func (m *mockImageStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, filename, r)
	}
	return "complaint_images/" + filename, nil
}

func (m *mockImageStore) Delete(ctx context.Context, ref string) error {
	m.deleted = append(m.deleted, ref)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ref)
	}
	return nil
}

func (m *mockImageStore) URL(ref string) string {
	return "/media/" + ref
}

type identitySanitizer struct{}

func (identitySanitizer) PlainText(input string) string { return input }

type mockEventDispatcher struct {
	PublishFunc func(event events.DomainEvent) error
	published   []events.DomainEvent
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		if err := m.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...any)
	ErrorwFunc func(msg string, keysAndValues ...any)
	WarnwFunc  func(msg string, keysAndValues ...any)
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...any) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func ptr[T any](v T) *T { return &v }

func storedComplaint(id uint, status vo.Status) *complaint.Complaint {
	c, err := complaint.ReconstructComplaint(complaint.ComplaintState{
		ID:          id,
		ComplaintID: "HA-2025-001",
		UserID:      ptr(uint(7)),
		Title:       "Pothole on Main St",
		Category:    vo.CategoryRoad,
		Description: "Large pothole near the bus stop",
		Location:    "Main St & 3rd Ave",
		Status:      status,
		CreatedAt:   time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		panic(err)
	}
	return c
}

func staffAccount(id uint) *user.Account {
	return user.ReconstructAccount(user.AccountState{
		ID:       id,
		Username: "officer",
		Email:    "officer@example.com",
		IsStaff:  true,
		IsActive: true,
	})
}

func citizenAccount(id uint) *user.Account {
	return user.ReconstructAccount(user.AccountState{
		ID:       id,
		Username: "citizen",
		Email:    "citizen@example.com",
		IsActive: true,
	})
}
