package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

// RequireStaff rejects callers whose resolved role is not a staff role.
// Must run after authentication.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsStaff() {
			utils.AbortWithError(c, errors.NewForbiddenError("staff access required"))
			return
		}
		c.Next()
	}
}

// CurrentRole returns the caller's role, citizen when unauthenticated.
func CurrentRole(c *gin.Context) UserRole {
	return ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}
