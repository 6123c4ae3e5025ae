package dto

import (
	"time"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
)

type DepartmentDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	Categories      []string  `json:"categories"`
	CategoryLabels  []string  `json:"category_labels"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DepartmentAdminDTO lists a staff member attached to a department.
type DepartmentAdminDTO struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	RoleDisplay string `json:"role_display"`
}

type AdminProfileDTO struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	DepartmentID *uint  `json:"department"`
	Role         string `json:"role"`
	RoleDisplay  string `json:"role_display"`
}

func ToDepartmentDTO(d *department.Department, descriptionHTML string) *DepartmentDTO {
	categories := d.Categories()
	codes := make([]string, 0, len(categories))
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		codes = append(codes, c.String())
		labels = append(labels, c.Label())
	}
	return &DepartmentDTO{
		ID:              d.ID(),
		Name:            d.Name(),
		Slug:            d.Slug(),
		Description:     d.Description(),
		DescriptionHTML: descriptionHTML,
		Categories:      codes,
		CategoryLabels:  labels,
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func ToDepartmentAdminDTO(p *department.AdminProfile, a *user.Account) DepartmentAdminDTO {
	return DepartmentAdminDTO{
		UserID:      a.ID(),
		Username:    a.Username(),
		Email:       a.Email(),
		Role:        p.Role().String(),
		RoleDisplay: p.Role().DisplayName(),
	}
}

func ToAdminProfileDTO(p *department.AdminProfile, a *user.Account) *AdminProfileDTO {
	role := p.Role()
	return &AdminProfileDTO{
		UserID:       a.ID(),
		Username:     a.Username(),
		DepartmentID: p.DepartmentID(),
		Role:         role.String(),
		RoleDisplay:  role.DisplayName(),
	}
}
