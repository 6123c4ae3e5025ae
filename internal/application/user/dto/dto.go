package dto

import (
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
)

type AccountDTO struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsStaff      bool   `json:"is_staff"`
	IsSuperuser  bool   `json:"is_superuser"`
	Role         string `json:"role"`
	RoleDisplay  string `json:"role_display"`
	DepartmentID *uint  `json:"department"`
}

// AuthResultDTO is returned by every endpoint that issues tokens.
type AuthResultDTO struct {
	Access    string      `json:"access"`
	Refresh   string      `json:"refresh"`
	ExpiresIn int64       `json:"expires_in"`
	User      *AccountDTO `json:"user"`
}

func ToAccountDTO(a *user.Account, role authorization.UserRole, departmentID *uint) *AccountDTO {
	return &AccountDTO{
		ID:           a.ID(),
		Username:     a.Username(),
		Email:        a.Email(),
		FirstName:    a.FirstName(),
		LastName:     a.LastName(),
		IsStaff:      a.IsStaff(),
		IsSuperuser:  a.IsSuperuser(),
		Role:         role.String(),
		RoleDisplay:  role.DisplayName(),
		DepartmentID: departmentID,
	}
}
