package models

import "github.com/civicdesk/civicdesk/internal/shared/constants"

type AccountModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	Email        string `gorm:"size:254;index"`
	FirstName    string `gorm:"size:150"`
	LastName     string `gorm:"size:150"`
	PasswordHash string `gorm:"size:255"`
	IsStaff      bool   `gorm:"not null;default:false"`
	IsSuperuser  bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *int64
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (AccountModel) TableName() string {
	return constants.TableAccounts
}
