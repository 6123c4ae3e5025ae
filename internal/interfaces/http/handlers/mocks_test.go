package handlers

import (
	"context"

	complaintdto "github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	complaintuc "github.com/civicdesk/civicdesk/internal/application/complaint/usecases"
	departmentdto "github.com/civicdesk/civicdesk/internal/application/department/dto"
	departmentuc "github.com/civicdesk/civicdesk/internal/application/department/usecases"
	notificationdto "github.com/civicdesk/civicdesk/internal/application/notification/dto"
	notificationuc "github.com/civicdesk/civicdesk/internal/application/notification/usecases"
	userdto "github.com/civicdesk/civicdesk/internal/application/user/dto"
	useruc "github.com/civicdesk/civicdesk/internal/application/user/usecases"
)

// =====================================================================
// Complaint use cases
// =====================================================================

type mockCreateComplaintUC struct {
	ExecuteFunc func(ctx context.Context, cmd complaintuc.CreateComplaintCommand) (*complaintdto.ComplaintDTO, error)
}

func (m *mockCreateComplaintUC) Execute(ctx context.Context, cmd complaintuc.CreateComplaintCommand) (*complaintdto.ComplaintDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetComplaintUC struct {
	ExecuteFunc func(ctx context.Context, query complaintuc.GetComplaintQuery) (*complaintdto.ComplaintDTO, error)
}

func (m *mockGetComplaintUC) Execute(ctx context.Context, query complaintuc.GetComplaintQuery) (*complaintdto.ComplaintDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockTrackComplaintUC struct {
	ExecuteFunc func(ctx context.Context, query complaintuc.TrackComplaintQuery) (*complaintdto.ComplaintDTO, error)
}

func (m *mockTrackComplaintUC) Execute(ctx context.Context, query complaintuc.TrackComplaintQuery) (*complaintdto.ComplaintDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockListComplaintsUC struct {
	ExecuteFunc func(ctx context.Context, query complaintuc.ListComplaintsQuery) (*complaintuc.ListComplaintsResult, error)
}

func (m *mockListComplaintsUC) Execute(ctx context.Context, query complaintuc.ListComplaintsQuery) (*complaintuc.ListComplaintsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockUpdateComplaintUC struct {
	ExecuteFunc func(ctx context.Context, cmd complaintuc.UpdateComplaintCommand) (*complaintdto.ComplaintDTO, error)
}

func (m *mockUpdateComplaintUC) Execute(ctx context.Context, cmd complaintuc.UpdateComplaintCommand) (*complaintdto.ComplaintDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteComplaintUC struct {
	ExecuteFunc func(ctx context.Context, cmd complaintuc.DeleteComplaintCommand) error
}

func (m *mockDeleteComplaintUC) Execute(ctx context.Context, cmd complaintuc.DeleteComplaintCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockAssignComplaintUC struct {
	ExecuteFunc func(ctx context.Context, cmd complaintuc.AssignComplaintCommand) (*complaintdto.ComplaintDTO, error)
}

func (m *mockAssignComplaintUC) Execute(ctx context.Context, cmd complaintuc.AssignComplaintCommand) (*complaintdto.ComplaintDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockPublicFeedUC struct {
	ExecuteFunc func(ctx context.Context, query complaintuc.PublicFeedQuery) (*complaintuc.PublicFeedResult, error)
}

func (m *mockPublicFeedUC) Execute(ctx context.Context, query complaintuc.PublicFeedQuery) (*complaintuc.PublicFeedResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockToggleUpvoteUC struct {
	ExecuteFunc func(ctx context.Context, cmd complaintuc.ToggleUpvoteCommand) (*complaintdto.UpvoteResultDTO, error)
}

func (m *mockToggleUpvoteUC) Execute(ctx context.Context, cmd complaintuc.ToggleUpvoteCommand) (*complaintdto.UpvoteResultDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

// =====================================================================
// Department use cases
// =====================================================================

type mockCreateDepartmentUC struct {
	ExecuteFunc func(ctx context.Context, cmd departmentuc.CreateDepartmentCommand) (*departmentdto.DepartmentDTO, error)
}

func (m *mockCreateDepartmentUC) Execute(ctx context.Context, cmd departmentuc.CreateDepartmentCommand) (*departmentdto.DepartmentDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockListDepartmentsUC struct {
	ExecuteFunc func(ctx context.Context) ([]*departmentdto.DepartmentDTO, error)
}

func (m *mockListDepartmentsUC) Execute(ctx context.Context) ([]*departmentdto.DepartmentDTO, error) {
	return m.ExecuteFunc(ctx)
}

type mockDeleteDepartmentUC struct {
	ExecuteFunc func(ctx context.Context, cmd departmentuc.DeleteDepartmentCommand) error
}

func (m *mockDeleteDepartmentUC) Execute(ctx context.Context, cmd departmentuc.DeleteDepartmentCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpsertAdminProfileUC struct {
	ExecuteFunc func(ctx context.Context, cmd departmentuc.UpsertAdminProfileCommand) (*departmentdto.AdminProfileDTO, error)
}

func (m *mockUpsertAdminProfileUC) Execute(ctx context.Context, cmd departmentuc.UpsertAdminProfileCommand) (*departmentdto.AdminProfileDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

// =====================================================================
// Auth use cases
// =====================================================================

type mockRegisterUC struct {
	ExecuteFunc func(ctx context.Context, cmd useruc.RegisterCommand) (*userdto.AuthResultDTO, error)
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd useruc.RegisterCommand) (*userdto.AuthResultDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLoginUC struct {
	ExecuteFunc func(ctx context.Context, cmd useruc.LoginCommand) (*userdto.AuthResultDTO, error)
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd useruc.LoginCommand) (*userdto.AuthResultDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLogoutUC struct {
	ExecuteFunc func(ctx context.Context, cmd useruc.LogoutCommand) error
}

func (m *mockLogoutUC) Execute(ctx context.Context, cmd useruc.LogoutCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGoogleAuthURLUC struct {
	result *useruc.GoogleAuthURLResult
	err    error
}

func (m *mockGoogleAuthURLUC) Execute(ctx context.Context) (*useruc.GoogleAuthURLResult, error) {
	return m.result, m.err
}

type mockGoogleCallbackUC struct {
	ExecuteFunc func(ctx context.Context, cmd useruc.GoogleCallbackCommand) (*useruc.GoogleCallbackResult, error)
}

func (m *mockGoogleCallbackUC) Execute(ctx context.Context, cmd useruc.GoogleCallbackCommand) (*useruc.GoogleCallbackResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

// =====================================================================
// Notification use cases
// =====================================================================

type mockListNotificationsUC struct {
	ExecuteFunc func(ctx context.Context, query notificationuc.ListNotificationsQuery) (*notificationdto.ListResponse, error)
}

func (m *mockListNotificationsUC) Execute(ctx context.Context, query notificationuc.ListNotificationsQuery) (*notificationdto.ListResponse, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockMarkNotificationAsReadUC struct {
	ExecuteFunc func(ctx context.Context, cmd notificationuc.MarkNotificationAsReadCommand) (*notificationdto.NotificationDTO, error)
}

func (m *mockMarkNotificationAsReadUC) Execute(ctx context.Context, cmd notificationuc.MarkNotificationAsReadCommand) (*notificationdto.NotificationDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}
