package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(api gin.IRouter, config *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.List)
		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
	}
}
