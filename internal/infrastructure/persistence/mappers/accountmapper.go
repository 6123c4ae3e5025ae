package mappers

import (
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
)

type AccountMapper interface {
	ToModel(a *user.Account) *models.AccountModel
	ToDomain(model *models.AccountModel) *user.Account
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToModel(a *user.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:           a.ID(),
		Username:     a.Username(),
		Email:        a.Email(),
		FirstName:    a.FirstName(),
		LastName:     a.LastName(),
		PasswordHash: a.PasswordHash(),
		IsStaff:      a.IsStaff(),
		IsSuperuser:  a.IsSuperuser(),
		IsActive:     a.IsActive(),
		LastLoginAt:  timePtrToMillis(a.LastLoginAt()),
		CreatedAt:    a.CreatedAt().UnixMilli(),
		UpdatedAt:    a.UpdatedAt().UnixMilli(),
	}
}

func (m *AccountMapperImpl) ToDomain(model *models.AccountModel) *user.Account {
	if model == nil {
		return nil
	}
	return user.ReconstructAccount(user.AccountState{
		ID:           model.ID,
		Username:     model.Username,
		Email:        model.Email,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		PasswordHash: model.PasswordHash,
		IsStaff:      model.IsStaff,
		IsSuperuser:  model.IsSuperuser,
		IsActive:     model.IsActive,
		LastLoginAt:  millisPtrToTime(model.LastLoginAt),
		CreatedAt:    millisToTime(model.CreatedAt),
		UpdatedAt:    millisToTime(model.UpdatedAt),
	})
}
