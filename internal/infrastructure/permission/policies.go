package permission

import (
	"fmt"

	"github.com/civicdesk/civicdesk/internal/domain/permission"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
)

// roleInheritance makes every admin role a staff member.
var roleInheritance = [][]string{
	{string(authorization.RoleWardOfficer), string(authorization.RoleStaff)},
	{string(authorization.RoleCDO), string(authorization.RoleStaff)},
	{string(authorization.RoleMunicipality), string(authorization.RoleStaff)},
	{string(authorization.RoleDepartmentHead), string(authorization.RoleStaff)},
	{string(authorization.RoleSuperAdmin), string(authorization.RoleStaff)},
}

func policy(role authorization.UserRole, resource permission.Resource, action permission.Action) []string {
	return []string{string(role), string(resource), string(action)}
}

// DefaultPolicies is the built-in policy set written by SeedDefaults.
func DefaultPolicies() [][]string {
	return [][]string{
		policy(authorization.RoleStaff, permission.ResourceComplaint, permission.ActionList),
		policy(authorization.RoleStaff, permission.ResourceComplaint, permission.ActionRead),
		policy(authorization.RoleStaff, permission.ResourceComplaint, permission.ActionUpdate),
		policy(authorization.RoleStaff, permission.ResourceComplaint, permission.ActionAssign),
		policy(authorization.RoleStaff, permission.ResourceDepartment, permission.ActionViewAdmins),

		policy(authorization.RoleMunicipality, permission.ResourceComplaint, permission.ActionDelete),
		policy(authorization.RoleDepartmentHead, permission.ResourceComplaint, permission.ActionDelete),
		policy(authorization.RoleSuperAdmin, permission.ResourceComplaint, permission.ActionDelete),

		policy(authorization.RoleSuperAdmin, permission.ResourceDepartment, permission.ActionManage),
	}
}

// SeedDefaults adds any missing default policies and role links. Existing rules,
// including ones added by operators, are left alone.
func (e *Enforcer) SeedDefaults() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range DefaultPolicies() {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", p[0],
				"resource", p[1],
				"action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	for _, g := range roleInheritance {
		if _, err := e.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return fmt.Errorf("failed to add role link [%s, %s]: %w", g[0], g[1], err)
		}
	}

	e.logger.Infow("default permissions ensured", "policies", len(DefaultPolicies()))
	return nil
}
