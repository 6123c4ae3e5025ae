// Package permission names the protected resources and actions of the admin surface.
package permission

// Resource is the object part of a policy.
type Resource string

const (
	ResourceComplaint  Resource = "complaint"
	ResourceDepartment Resource = "department"
)

// Action is the verb part of a policy.
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionAssign Action = "assign"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
	// ActionViewAdmins lists a department's staff.
	ActionViewAdmins Action = "view_admins"
)

// PermissionEnforcer decides whether a role may perform action on resource.
type PermissionEnforcer interface {
	Enforce(role string, resource Resource, action Action) (bool, error)
}
