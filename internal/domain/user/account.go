package user

import (
	"fmt"
	"time"

	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

// Account is a person who can sign in: a citizen, a staff member or a superuser.
type Account struct {
	id           uint
	username     string
	email        string
	firstName    string
	lastName     string
	passwordHash string
	isStaff      bool
	isSuperuser  bool
	isActive     bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// AccountState is the persisted form used to rebuild an Account.
type AccountState struct {
	ID           uint
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsStaff      bool
	IsSuperuser  bool
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount creates an active citizen account. passwordHash may be empty for
// accounts that only sign in through OAuth.
func NewAccount(username, email, firstName, lastName, passwordHash string) (*Account, error) {
	u, err := vo.ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	e, err := vo.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	first, err := vo.NormalizePersonName(firstName)
	if err != nil {
		return nil, fmt.Errorf("first name: %w", err)
	}
	last, err := vo.NormalizePersonName(lastName)
	if err != nil {
		return nil, fmt.Errorf("last name: %w", err)
	}

	now := biztime.NowUTC()
	return &Account{
		username:     u,
		email:        e,
		firstName:    first,
		lastName:     last,
		passwordHash: passwordHash,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAccount(s AccountState) *Account {
	return &Account{
		id:           s.ID,
		username:     s.Username,
		email:        s.Email,
		firstName:    s.FirstName,
		lastName:     s.LastName,
		passwordHash: s.PasswordHash,
		isStaff:      s.IsStaff,
		isSuperuser:  s.IsSuperuser,
		isActive:     s.IsActive,
		lastLoginAt:  s.LastLoginAt,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}
}

func (a *Account) ID() uint                { return a.id }
func (a *Account) Username() string        { return a.username }
func (a *Account) Email() string           { return a.email }
func (a *Account) FirstName() string       { return a.firstName }
func (a *Account) LastName() string        { return a.lastName }
func (a *Account) PasswordHash() string    { return a.passwordHash }
func (a *Account) IsStaff() bool           { return a.isStaff }
func (a *Account) IsSuperuser() bool       { return a.isSuperuser }
func (a *Account) IsActive() bool          { return a.isActive }
func (a *Account) LastLoginAt() *time.Time { return a.lastLoginAt }
func (a *Account) CreatedAt() time.Time    { return a.createdAt }
func (a *Account) UpdatedAt() time.Time    { return a.updatedAt }

// HasUsablePassword is false for OAuth-only accounts.
func (a *Account) HasUsablePassword() bool {
	return a.passwordHash != ""
}

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// ChangeUsername is used when an OAuth-derived username collides and gets an id suffix.
func (a *Account) ChangeUsername(username string) error {
	u, err := vo.ValidateUsername(username)
	if err != nil {
		return err
	}
	a.username = u
	a.updatedAt = biztime.NowUTC()
	return nil
}

// GrantStaff marks the account as staff; superusers are implicitly staff.
func (a *Account) GrantStaff(superuser bool) {
	a.isStaff = true
	a.isSuperuser = superuser
	a.updatedAt = biztime.NowUTC()
}

func (a *Account) Deactivate() {
	a.isActive = false
	a.updatedAt = biztime.NowUTC()
}

func (a *Account) RecordLogin() {
	now := biztime.NowUTC()
	a.lastLoginAt = &now
}

// SyncNames overwrites the stored names with non-empty values from an identity
// provider and reports whether anything changed.
func (a *Account) SyncNames(firstName, lastName string) bool {
	changed := false
	if first, err := vo.NormalizePersonName(firstName); err == nil && first != "" && first != a.firstName {
		a.firstName = first
		changed = true
	}
	if last, err := vo.NormalizePersonName(lastName); err == nil && last != "" && last != a.lastName {
		a.lastName = last
		changed = true
	}
	if changed {
		a.updatedAt = biztime.NowUTC()
	}
	return changed
}
