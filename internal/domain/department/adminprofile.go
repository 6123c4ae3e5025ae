package department

import (
	"fmt"

	"github.com/civicdesk/civicdesk/internal/shared/authorization"
)

// AdminProfile ties a staff account to at most one department and an admin role.
type AdminProfile struct {
	id           uint
	userID       uint
	departmentID *uint
	role         authorization.UserRole
}

// NewAdminProfile defaults an empty role to ward_officer.
func NewAdminProfile(userID uint, departmentID *uint, role authorization.UserRole) (*AdminProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if role == "" {
		role = authorization.RoleWardOfficer
	}
	if !role.IsAdminProfileRole() {
		return nil, fmt.Errorf("invalid admin role: %s", role)
	}
	return &AdminProfile{userID: userID, departmentID: departmentID, role: role}, nil
}

func ReconstructAdminProfile(id, userID uint, departmentID *uint, role authorization.UserRole) *AdminProfile {
	return &AdminProfile{id: id, userID: userID, departmentID: departmentID, role: role}
}

func (p *AdminProfile) ID() uint                     { return p.id }
func (p *AdminProfile) UserID() uint                 { return p.userID }
func (p *AdminProfile) DepartmentID() *uint          { return p.departmentID }
func (p *AdminProfile) Role() authorization.UserRole { return p.role }

func (p *AdminProfile) SetID(id uint) {
	p.id = id
}

// Reassign changes the department and role together.
func (p *AdminProfile) Reassign(departmentID *uint, role authorization.UserRole) error {
	if role == "" {
		role = p.role
	}
	if !role.IsAdminProfileRole() {
		return fmt.Errorf("invalid admin role: %s", role)
	}
	p.departmentID = departmentID
	p.role = role
	return nil
}
