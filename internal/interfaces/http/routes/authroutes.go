package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(api gin.IRouter, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/token/refresh", cfg.AuthHandler.Refresh)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)

		auth.GET("/google", cfg.AuthHandler.GoogleLogin)
		auth.GET("/google/callback", cfg.AuthHandler.GoogleCallback)
	}
}
