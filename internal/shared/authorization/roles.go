package authorization

// UserRole is the effective role resolved for a caller and carried in its token.
type UserRole string

const (
	RoleCitizen        UserRole = "citizen"
	RoleStaff          UserRole = "staff"
	RoleWardOfficer    UserRole = "ward_officer"
	RoleCDO            UserRole = "cdo"
	RoleMunicipality   UserRole = "municipality"
	RoleDepartmentHead UserRole = "department_head"
	RoleSuperAdmin     UserRole = "super_admin"
)

// AdminRoles are the roles an admin profile may hold, in ascending authority.
var AdminRoles = []UserRole{
	RoleWardOfficer,
	RoleCDO,
	RoleMunicipality,
	RoleDepartmentHead,
	RoleSuperAdmin,
}

var roleDisplayNames = map[UserRole]string{
	RoleCitizen:        "Citizen",
	RoleStaff:          "Staff",
	RoleWardOfficer:    "Ward Officer",
	RoleCDO:            "CDO",
	RoleMunicipality:   "Municipality",
	RoleDepartmentHead: "Department Head",
	RoleSuperAdmin:     "Super Admin",
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) DisplayName() string {
	if name, ok := roleDisplayNames[r]; ok {
		return name
	}
	return string(r)
}

// IsAdminProfileRole reports whether r may be stored on an admin profile.
func (r UserRole) IsAdminProfileRole() bool {
	for _, ar := range AdminRoles {
		if ar == r {
			return true
		}
	}
	return false
}

// IsStaff reports whether r belongs to the staff side of the system.
func (r UserRole) IsStaff() bool {
	return r == RoleStaff || r.IsAdminProfileRole()
}

func (r UserRole) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// ParseUserRole falls back to citizen for unknown values.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if _, ok := roleDisplayNames[role]; ok {
		return role
	}
	return RoleCitizen
}

// ResolveRole derives the effective role from account flags and an optional profile role.
func ResolveRole(isStaff, isSuperuser bool, profileRole UserRole) UserRole {
	switch {
	case isSuperuser:
		return RoleSuperAdmin
	case !isStaff:
		return RoleCitizen
	case profileRole.IsAdminProfileRole():
		return profileRole
	default:
		return RoleStaff
	}
}
