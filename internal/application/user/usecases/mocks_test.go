package usecases

import (
	"context"
	"strings"
	"sync"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/auth"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// accountStore is an in-memory user.Repository with a unique username index.
type accountStore struct {
	mu       sync.Mutex
	nextID   uint
	accounts map[uint]*user.Account
	UpdateFn func(a *user.Account) error
}

func newAccountStore(seed ...*user.Account) *accountStore {
	s := &accountStore{nextID: 1, accounts: map[uint]*user.Account{}}
	for _, a := range seed {
		s.accounts[a.ID()] = a
		if a.ID() >= s.nextID {
			s.nextID = a.ID() + 1
		}
	}
	return s
}

func (s *accountStore) Create(ctx context.Context, a *user.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.Username() == a.Username() {
			return user.ErrDuplicateUsername
		}
	}
	if err := a.SetID(s.nextID); err != nil {
		return err
	}
	s.nextID++
	s.accounts[a.ID()] = a
	return nil
}

func (s *accountStore) Update(ctx context.Context, a *user.Account) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(a)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.accounts {
		if id != a.ID() && existing.Username() == a.Username() {
			return user.ErrDuplicateUsername
		}
	}
	s.accounts[a.ID()] = a
	return nil
}

func (s *accountStore) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		return a, nil
	}
	return nil, user.ErrAccountNotFound
}

func (s *accountStore) find(match func(*user.Account) bool) (*user.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := uint(1); id < s.nextID; id++ {
		if a, ok := s.accounts[id]; ok && match(a) {
			return a, nil
		}
	}
	return nil, user.ErrAccountNotFound
}

func (s *accountStore) GetByUsername(ctx context.Context, username string) (*user.Account, error) {
	return s.find(func(a *user.Account) bool { return a.Username() == username })
}

func (s *accountStore) GetByEmail(ctx context.Context, email string) (*user.Account, error) {
	if email == "" {
		return nil, user.ErrAccountNotFound
	}
	return s.find(func(a *user.Account) bool { return strings.EqualFold(a.Email(), email) })
}

func (s *accountStore) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.Account, error) {
	out := map[uint]*user.Account{}
	for _, id := range ids {
		if a, err := s.GetByID(ctx, id); err == nil {
			out[id] = a
		}
	}
	return out, nil
}

func (s *accountStore) ListSuperusers(ctx context.Context) ([]*user.Account, error) {
	return nil, nil
}

type mockAdminProfileRepository struct {
	GetByUserIDFunc func(ctx context.Context, userID uint) (*department.AdminProfile, error)
}

func (m *mockAdminProfileRepository) Save(ctx context.Context, p *department.AdminProfile) error {
	return nil
}

func (m *mockAdminProfileRepository) GetByUserID(ctx context.Context, userID uint) (*department.AdminProfile, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, department.ErrAdminProfileNotFound
}

func (m *mockAdminProfileRepository) ListByDepartment(ctx context.Context, departmentID uint) ([]*department.AdminProfile, error) {
	return nil, nil
}

type mockGoogleClient struct {
	ProfileFunc func(ctx context.Context, code, codeVerifier string) (*auth.GoogleProfile, error)
}

func (m *mockGoogleClient) AuthURL(state string) (string, string, error) {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state, "verifier-" + state[:4], nil
}

func (m *mockGoogleClient) Profile(ctx context.Context, code, codeVerifier string) (*auth.GoogleProfile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, code, codeVerifier)
	}
	return &auth.GoogleProfile{Email: "someone@gmail.com"}, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func testTokens() *auth.JWTService {
	return auth.NewJWTService("test-secret-key-with-enough-length", 60, 7)
}

func testHasher() *auth.BcryptPasswordHasher {
	return auth.NewBcryptPasswordHasher(4)
}
