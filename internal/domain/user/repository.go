package user

import (
	"context"
	"errors"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

type Repository interface {
	// Create inserts a, returning ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, a *Account) error
	Update(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Account, error)
	ListSuperusers(ctx context.Context) ([]*Account, error)
}
