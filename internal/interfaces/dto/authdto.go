package dto

import (
	"github.com/civicdesk/civicdesk/internal/application/user/usecases"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}
