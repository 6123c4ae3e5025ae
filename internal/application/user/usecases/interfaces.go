package usecases

import (
	"context"
	"time"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/infrastructure/auth"
	"github.com/civicdesk/civicdesk/internal/infrastructure/cache"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenService interface {
	Generate(id auth.Identity) (*auth.TokenPair, error)
	VerifyRefresh(token string) (*auth.Claims, error)
	Rotate(previous *auth.Claims, id auth.Identity) (*auth.TokenPair, error)
}

// GoogleClient is the OAuth provider boundary.
type GoogleClient interface {
	AuthURL(state string) (authURL, codeVerifier string, err error)
	Profile(ctx context.Context, code, codeVerifier string) (*auth.GoogleProfile, error)
}

type StateStore interface {
	Set(ctx context.Context, state, codeVerifier string) error
	VerifyAndGet(ctx context.Context, state string) (*cache.StateInfo, error)
}

// SessionRevoker blacklists token sessions on logout and rotation.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResultDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthResultDTO, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.AccountDTO, error)
}

type GoogleAuthURLExecutor interface {
	Execute(ctx context.Context) (*GoogleAuthURLResult, error)
}

type GoogleCallbackExecutor interface {
	Execute(ctx context.Context, cmd GoogleCallbackCommand) (*GoogleCallbackResult, error)
}
