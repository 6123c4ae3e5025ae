package models

import "github.com/civicdesk/civicdesk/internal/shared/constants"

type ComplaintModel struct {
	ID                   uint     `gorm:"primaryKey"`
	ComplaintID          string   `gorm:"uniqueIndex;size:20;not null"`
	UserID               *uint    `gorm:"index"`
	Title                string   `gorm:"size:200;not null"`
	Category             string   `gorm:"size:20;not null;index"`
	Description          string   `gorm:"type:text;not null"`
	Location             string   `gorm:"size:300;not null"`
	Latitude             *float64 `gorm:"type:decimal(9,6)"`
	Longitude            *float64 `gorm:"type:decimal(9,6)"`
	Status               string   `gorm:"size:20;not null;default:'Submitted';index"`
	Image                string   `gorm:"size:255;not null;default:''"`
	AssignedDepartmentID *uint    `gorm:"index"`
	AssignedToID         *uint    `gorm:"index"`
	CreatedAt            int64    `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt            int64    `gorm:"autoUpdateTime:milli;not null"`

	Images []ComplaintImageModel `gorm:"foreignKey:ComplaintID"`
}

func (ComplaintModel) TableName() string {
	return constants.TableComplaints
}

type ComplaintImageModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	Image       string `gorm:"size:255;not null"`
	UploadedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ComplaintImageModel) TableName() string {
	return constants.TableComplaintImages
}

type ComplaintUpvoteModel struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      uint  `gorm:"not null;uniqueIndex:uk_upvote_user_complaint"`
	ComplaintID uint  `gorm:"not null;uniqueIndex:uk_upvote_user_complaint;index"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ComplaintUpvoteModel) TableName() string {
	return constants.TableUpvotes
}

// ComplaintFeedRow is the scan target for the public feed aggregate query.
type ComplaintFeedRow struct {
	ComplaintModel
	UpvoteCount int64 `gorm:"column:upvote_count"`
}
