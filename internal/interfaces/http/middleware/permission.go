package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/domain/permission"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

// PermissionMiddleware checks the caller's role against the policy store.
type PermissionMiddleware struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.PermissionEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission must run after RequireAuth. Denials are always 403.
func (m *PermissionMiddleware) RequirePermission(resource permission.Resource, action permission.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			utils.AbortWithError(c, errors.NewUnauthorizedError("Authentication credentials were not provided."))
			return
		}
		role := c.GetString(constants.ContextKeyUserRole)

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err,
				"user_id", userID,
				"resource", resource,
				"action", action)
			utils.AbortWithError(c, errors.NewInternalError("permission check failed"))
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", userID,
				"role", role,
				"resource", resource,
				"action", action)
			utils.AbortWithError(c, errors.NewForbiddenError("You do not have permission to perform this action."))
			return
		}

		c.Next()
	}
}
