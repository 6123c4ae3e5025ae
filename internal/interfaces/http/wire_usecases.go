package http

import (
	complaintUsecases "github.com/civicdesk/civicdesk/internal/application/complaint/usecases"
	departmentUsecases "github.com/civicdesk/civicdesk/internal/application/department/usecases"
	notificationUsecases "github.com/civicdesk/civicdesk/internal/application/notification/usecases"
	"github.com/civicdesk/civicdesk/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC       *usecases.RegisterUseCase
	loginUC          *usecases.LoginUseCase
	refreshTokenUC   *usecases.RefreshTokenUseCase
	logoutUC         *usecases.LogoutUseCase
	getCurrentUserUC *usecases.GetCurrentUserUseCase
	googleAuthURLUC  *usecases.GoogleAuthURLUseCase
	googleCallbackUC *usecases.GoogleCallbackUseCase

	// Complaint
	createComplaintUC *complaintUsecases.CreateComplaintUseCase
	getComplaintUC    *complaintUsecases.GetComplaintUseCase
	trackComplaintUC  *complaintUsecases.TrackComplaintUseCase
	listComplaintsUC  *complaintUsecases.ListComplaintsUseCase
	updateComplaintUC *complaintUsecases.UpdateComplaintUseCase
	deleteComplaintUC *complaintUsecases.DeleteComplaintUseCase
	assignComplaintUC *complaintUsecases.AssignComplaintUseCase
	publicFeedUC      *complaintUsecases.PublicFeedUseCase
	toggleUpvoteUC    *complaintUsecases.ToggleUpvoteUseCase

	// Department
	createDepartmentUC     *departmentUsecases.CreateDepartmentUseCase
	updateDepartmentUC     *departmentUsecases.UpdateDepartmentUseCase
	deleteDepartmentUC     *departmentUsecases.DeleteDepartmentUseCase
	getDepartmentUC        *departmentUsecases.GetDepartmentUseCase
	listDepartmentsUC      *departmentUsecases.ListDepartmentsUseCase
	listDepartmentAdminsUC *departmentUsecases.ListDepartmentAdminsUseCase
	upsertAdminProfileUC   *departmentUsecases.UpsertAdminProfileUseCase

	// Notification
	listNotificationsUC *notificationUsecases.ListNotificationsUseCase
	markNotificationUC  *notificationUsecases.MarkNotificationAsReadUseCase
}

func (c *Container) initUseCases() {
	r, s, log := c.repos, c.svcs, c.log
	ucs := &allUseCases{}

	ucs.registerUC = usecases.NewRegisterUseCase(r.userRepo, r.adminProfileRepo, s.hasher, s.jwt, log)
	ucs.loginUC = usecases.NewLoginUseCase(r.userRepo, r.adminProfileRepo, s.hasher, s.jwt, log)
	ucs.refreshTokenUC = usecases.NewRefreshTokenUseCase(r.userRepo, r.adminProfileRepo, s.jwt, s.sessions, log)
	ucs.logoutUC = usecases.NewLogoutUseCase(s.jwt, s.sessions, log)
	ucs.getCurrentUserUC = usecases.NewGetCurrentUserUseCase(r.userRepo, r.adminProfileRepo, log)
	if s.google != nil {
		ucs.googleAuthURLUC = usecases.NewGoogleAuthURLUseCase(s.google, s.stateStore, log)
		ucs.googleCallbackUC = usecases.NewGoogleCallbackUseCase(r.userRepo, r.adminProfileRepo, r.txMgr, s.google, s.stateStore, s.jwt, log)
	}

	ucs.createComplaintUC = complaintUsecases.NewCreateComplaintUseCase(
		r.complaintRepo, s.idGenerator, r.txMgr, s.imageStore, s.renderer, c.dispatcher, c.cfg.Complaint.MaxAttempts, log)
	ucs.getComplaintUC = complaintUsecases.NewGetComplaintUseCase(r.complaintRepo, r.departmentRepo, r.userRepo, s.imageStore, log)
	ucs.trackComplaintUC = complaintUsecases.NewTrackComplaintUseCase(r.complaintRepo, r.departmentRepo, r.userRepo, s.imageStore, log)
	ucs.listComplaintsUC = complaintUsecases.NewListComplaintsUseCase(r.complaintRepo, r.departmentRepo, r.userRepo, s.imageStore, log)
	ucs.updateComplaintUC = complaintUsecases.NewUpdateComplaintUseCase(
		r.complaintRepo, r.departmentRepo, r.userRepo, s.imageStore, s.renderer, c.dispatcher, log)
	ucs.deleteComplaintUC = complaintUsecases.NewDeleteComplaintUseCase(r.complaintRepo, s.imageStore, log)
	ucs.assignComplaintUC = complaintUsecases.NewAssignComplaintUseCase(
		r.complaintRepo, r.departmentRepo, r.userRepo, s.imageStore, c.dispatcher, log)
	ucs.publicFeedUC = complaintUsecases.NewPublicFeedUseCase(r.complaintRepo, r.upvoteRepo, s.imageStore, log)
	ucs.toggleUpvoteUC = complaintUsecases.NewToggleUpvoteUseCase(r.complaintRepo, r.upvoteRepo, r.txMgr, log)

	ucs.createDepartmentUC = departmentUsecases.NewCreateDepartmentUseCase(r.departmentRepo, s.renderer, log)
	ucs.updateDepartmentUC = departmentUsecases.NewUpdateDepartmentUseCase(r.departmentRepo, s.renderer, log)
	ucs.deleteDepartmentUC = departmentUsecases.NewDeleteDepartmentUseCase(r.departmentRepo, log)
	ucs.getDepartmentUC = departmentUsecases.NewGetDepartmentUseCase(r.departmentRepo, s.renderer, log)
	ucs.listDepartmentsUC = departmentUsecases.NewListDepartmentsUseCase(r.departmentRepo, s.renderer, log)
	ucs.listDepartmentAdminsUC = departmentUsecases.NewListDepartmentAdminsUseCase(r.departmentRepo, r.adminProfileRepo, r.userRepo, log)
	ucs.upsertAdminProfileUC = departmentUsecases.NewUpsertAdminProfileUseCase(r.departmentRepo, r.adminProfileRepo, r.userRepo, log)

	ucs.listNotificationsUC = notificationUsecases.NewListNotificationsUseCase(r.notificationRepo, log)
	ucs.markNotificationUC = notificationUsecases.NewMarkNotificationAsReadUseCase(r.notificationRepo, log)

	c.ucs = ucs
}
