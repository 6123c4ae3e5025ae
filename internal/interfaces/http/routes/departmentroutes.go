package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/domain/permission"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
)

type DepartmentRouteConfig struct {
	DepartmentHandler    *handlers.DepartmentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupDepartmentRoutes(api gin.IRouter, cfg *DepartmentRouteConfig) {
	h := cfg.DepartmentHandler
	manage := []gin.HandlerFunc{
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceDepartment, permission.ActionManage),
	}

	departments := api.Group("/departments")
	{
		departments.GET("", h.List)
		departments.POST("", append(manage, h.Create)...)

		departments.GET("/:id/admins",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceDepartment, permission.ActionViewAdmins),
			h.ListAdmins)

		departments.GET("/:id", h.Get)
		departments.PUT("/:id", append(manage, h.Update)...)
		departments.DELETE("/:id", append(manage, h.Delete)...)
	}

	api.PUT("/admin-profiles/:user_id", append(manage, h.UpsertAdminProfile)...)
}
