package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

// ParseUintParam reads a positive numeric path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, errors.NewValidationError(name+" is required", errors.FieldError(name, "missing"))
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError("invalid "+name, errors.FieldError(name, "must be a positive integer"))
	}
	return uint(n), nil
}

// CurrentUserID returns the authenticated user id, or 0 for anonymous requests.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
