package dto

import (
	"github.com/civicdesk/civicdesk/internal/application/department/usecases"
)

type DepartmentRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Slug        string   `json:"slug" binding:"omitempty,max=100"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

func (r *DepartmentRequest) ToCreateCommand() usecases.CreateDepartmentCommand {
	return usecases.CreateDepartmentCommand{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Categories:  r.Categories,
	}
}

func (r *DepartmentRequest) ToUpdateCommand(id uint) usecases.UpdateDepartmentCommand {
	return usecases.UpdateDepartmentCommand{
		ID:          id,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Categories:  r.Categories,
	}
}

type UpsertAdminProfileRequest struct {
	Role       string `json:"role" binding:"required"`
	Department *uint  `json:"department"`
}

func (r *UpsertAdminProfileRequest) ToCommand(userID uint) usecases.UpsertAdminProfileCommand {
	return usecases.UpsertAdminProfileCommand{
		UserID:       userID,
		DepartmentID: r.Department,
		Role:         r.Role,
	}
}
