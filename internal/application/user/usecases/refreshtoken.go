package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenUseCase rotates a token pair, re-resolving the role so profile changes
// take effect. The replaced session is revoked, so each refresh token works once.
type RefreshTokenUseCase struct {
	userRepo     user.Repository
	tokenService TokenService
	sessions     SessionRevoker
	identities   identityResolver
	logger       logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	profileRepo department.AdminProfileRepository,
	tokenService TokenService,
	sessions SessionRevoker,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
		sessions:     sessions,
		identities:   identityResolver{profileRepo: profileRepo},
		logger:       logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthResultDTO, error) {
	claims, err := uc.tokenService.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Token is invalid or expired")
	}

	revoked, err := uc.sessions.IsRevoked(ctx, claims.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to check session", "session_id", claims.SessionID, "error", err)
		return nil, errors.NewInternalError("failed to refresh token")
	}
	if revoked {
		uc.logger.Warnw("refresh with revoked session", "user_id", claims.UserID, "session_id", claims.SessionID)
		return nil, errors.NewUnauthorizedError("Token is invalid or expired")
	}

	account, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || !account.IsActive() {
		return nil, errors.NewUnauthorizedError("Token is invalid or expired")
	}

	resolved, err := uc.identities.resolve(ctx, account)
	if err != nil {
		uc.logger.Errorw("failed to resolve role", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to refresh token")
	}
	pair, err := uc.tokenService.Rotate(claims, resolved.identity)
	if err != nil {
		uc.logger.Errorw("failed to rotate tokens", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to refresh token")
	}
	if err := uc.sessions.Revoke(ctx, claims.SessionID, claims.RemainingTTL(biztime.NowUTC())); err != nil {
		uc.logger.Errorw("failed to revoke rotated session", "session_id", claims.SessionID, "error", err)
		return nil, errors.NewInternalError("failed to refresh token")
	}

	return authResult(pair, resolved.account(account)), nil
}
