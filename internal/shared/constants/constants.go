package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Gin context keys set by the auth middleware.
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyIsStaff   = "is_staff"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	TableAccounts        = "accounts"
	TableDepartments     = "departments"
	TableAdminProfiles   = "admin_profiles"
	TableComplaints      = "complaints"
	TableComplaintImages = "complaint_images"
	TableUpvotes         = "complaint_upvotes"
	TableNotifications   = "notifications"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"

	MsgComplaintSubmitted = "Complaint submitted successfully"
)
