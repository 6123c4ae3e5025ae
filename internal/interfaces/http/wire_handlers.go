package http

import (
	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	complaintHandler    *handlers.ComplaintHandler
	departmentHandler   *handlers.DepartmentHandler
	notificationHandler *handlers.NotificationHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs

	authUCs := handlers.AuthUseCases{
		Register: ucs.registerUC,
		Login:    ucs.loginUC,
		Refresh:  ucs.refreshTokenUC,
		Logout:   ucs.logoutUC,
		Me:       ucs.getCurrentUserUC,
	}
	// Typed nil pointers must not leak into the interface fields.
	if ucs.googleAuthURLUC != nil {
		authUCs.GoogleAuthURL = ucs.googleAuthURLUC
		authUCs.GoogleCallback = ucs.googleCallbackUC
	}

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	}

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(authUCs, c.cfg.Server.FrontendURL, c.log),
		complaintHandler: handlers.NewComplaintHandler(handlers.ComplaintUseCases{
			Create: ucs.createComplaintUC,
			Get:    ucs.getComplaintUC,
			Track:  ucs.trackComplaintUC,
			List:   ucs.listComplaintsUC,
			Update: ucs.updateComplaintUC,
			Delete: ucs.deleteComplaintUC,
			Assign: ucs.assignComplaintUC,
			Feed:   ucs.publicFeedUC,
			Upvote: ucs.toggleUpvoteUC,
		}, c.log),
		departmentHandler: handlers.NewDepartmentHandler(handlers.DepartmentUseCases{
			Create:      ucs.createDepartmentUC,
			Update:      ucs.updateDepartmentUC,
			Delete:      ucs.deleteDepartmentUC,
			Get:         ucs.getDepartmentUC,
			List:        ucs.listDepartmentsUC,
			ListAdmins:  ucs.listDepartmentAdminsUC,
			UpsertAdmin: ucs.upsertAdminProfileUC,
		}, c.log),
		notificationHandler: handlers.NewNotificationHandler(ucs.listNotificationsUC, ucs.markNotificationUC, c.log),
		healthHandler:       handlers.NewHealthHandler(pinger, c.log),
	}
}
