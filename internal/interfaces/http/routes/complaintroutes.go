package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/domain/permission"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
)

type ComplaintRouteConfig struct {
	ComplaintHandler     *handlers.ComplaintHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
}

func SetupComplaintRoutes(api gin.IRouter, cfg *ComplaintRouteConfig) {
	h := cfg.ComplaintHandler
	requireAuth := cfg.AuthMiddleware.RequireAuth()
	can := cfg.PermissionMiddleware.RequirePermission

	complaints := api.Group("/complaints")
	{
		// Named paths must be registered before /:id.
		complaints.POST("", cfg.RateLimiter.Limit(), cfg.AuthMiddleware.OptionalAuth(), h.Create)
		complaints.GET("/track/:complaint_id", h.Track)
		complaints.GET("/public", cfg.AuthMiddleware.OptionalAuth(), h.PublicFeed)
		complaints.GET("/mine", requireAuth, h.Mine)

		complaints.GET("", requireAuth, can(permission.ResourceComplaint, permission.ActionList), h.List)
		complaints.POST("/:id/upvote", cfg.RateLimiter.Limit(), requireAuth, h.ToggleUpvote)
		complaints.POST("/:id/assign", requireAuth, can(permission.ResourceComplaint, permission.ActionAssign), h.Assign)

		complaints.GET("/:id", requireAuth, can(permission.ResourceComplaint, permission.ActionRead), h.Get)
		complaints.PATCH("/:id", requireAuth, can(permission.ResourceComplaint, permission.ActionUpdate), h.Update)
		complaints.DELETE("/:id", requireAuth, can(permission.ResourceComplaint, permission.ActionDelete), h.Delete)
	}
}
