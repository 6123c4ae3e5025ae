package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// LogoutCommand carries the caller taken from the access token and the refresh
// token the client wants revoked.
type LogoutCommand struct {
	UserID       uint
	SessionID    string
	RefreshToken string
}

// LogoutUseCase revokes the refresh token's session and the session of the access
// token used for the call. Both stay revoked until their tokens would expire.
type LogoutUseCase struct {
	tokenService TokenService
	sessions     SessionRevoker
	logger       logger.Interface
}

func NewLogoutUseCase(tokenService TokenService, sessions SessionRevoker, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		tokenService: tokenService,
		sessions:     sessions,
		logger:       logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	claims, err := uc.tokenService.VerifyRefresh(cmd.RefreshToken)
	if err != nil || claims.UserID != cmd.UserID {
		return errors.NewValidationError("Token is invalid or expired", errors.FieldError("refresh", "invalid or expired"))
	}

	// The access token of this session cannot outlive its refresh token.
	ttl := claims.RemainingTTL(biztime.NowUTC())
	if err := uc.sessions.Revoke(ctx, claims.SessionID, ttl); err != nil {
		uc.logger.Errorw("failed to revoke session", "session_id", claims.SessionID, "error", err)
		return errors.NewInternalError("failed to logout")
	}
	if cmd.SessionID != "" && cmd.SessionID != claims.SessionID {
		if err := uc.sessions.Revoke(ctx, cmd.SessionID, ttl); err != nil {
			uc.logger.Errorw("failed to revoke session", "session_id", cmd.SessionID, "error", err)
			return errors.NewInternalError("failed to logout")
		}
	}

	uc.logger.Infow("user logged out successfully", "user_id", cmd.UserID, "session_id", claims.SessionID)
	return nil
}
