package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Interface
}

func NewHealthHandler(db Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Warnw("health check database ping failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"service":  "civicdesk",
				"database": "unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "civicdesk",
	})
}
