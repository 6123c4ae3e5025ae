package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/routes"
	"github.com/civicdesk/civicdesk/internal/shared/logger"

	_ "github.com/civicdesk/civicdesk/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if r.cfg.Storage.MediaURL != "" {
		r.engine.Static(r.cfg.Storage.MediaURL, r.cfg.Storage.MediaRoot)
	}

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})
	routes.SetupComplaintRoutes(api, &routes.ComplaintRouteConfig{
		ComplaintHandler:     r.hdlrs.complaintHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimiter,
	})
	routes.SetupDepartmentRoutes(api, &routes.DepartmentRouteConfig{
		DepartmentHandler:    r.hdlrs.departmentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: r.hdlrs.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
