package models

import "github.com/civicdesk/civicdesk/internal/shared/constants"

type DepartmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Slug        string `gorm:"uniqueIndex;size:120;not null"`
	Description string `gorm:"type:text"`
	// Comma-delimited category codes.
	Categories string `gorm:"size:255;not null;default:''"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (DepartmentModel) TableName() string {
	return constants.TableDepartments
}

type AdminProfileModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	DepartmentID *uint  `gorm:"index"`
	Role         string `gorm:"size:30;not null;default:'ward_officer'"`
}

func (AdminProfileModel) TableName() string {
	return constants.TableAdminProfiles
}
