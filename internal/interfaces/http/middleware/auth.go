package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/infrastructure/auth"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

// TokenVerifier validates an access token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// SessionChecker reports whether a token session was revoked by logout or rotation.
type SessionChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	sessions SessionChecker
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, sessions SessionChecker, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("Authentication credentials were not provided."))
			return
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			utils.AbortWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.AbortWithError(c, errors.NewUnauthorizedError("Token is invalid or expired"))
			return
		}
		if claims.TokenType != auth.TokenTypeAccess {
			utils.AbortWithError(c, errors.NewUnauthorizedError("invalid token type"))
			return
		}

		revoked, err := m.sessions.IsRevoked(c.Request.Context(), claims.SessionID)
		if err != nil {
			m.logger.Errorw("failed to check session", "session_id", claims.SessionID, "error", err)
			utils.AbortWithError(c, errors.NewInternalError("failed to verify session"))
			return
		}
		if revoked {
			utils.AbortWithError(c, errors.NewUnauthorizedError("Token is invalid or expired"))
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization)); ok {
			if claims, err := m.verifier.Verify(token); err == nil && claims.TokenType == auth.TokenTypeAccess {
				if revoked, err := m.sessions.IsRevoked(c.Request.Context(), claims.SessionID); err == nil && !revoked {
					setIdentity(c, claims)
				}
			}
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeySessionID, claims.SessionID)
	c.Set(constants.ContextKeyIsStaff, claims.IsStaff)
	c.Set(constants.ContextKeyUserRole, string(claims.Role))
}
