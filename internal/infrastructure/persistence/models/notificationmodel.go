package models

import (
	"gorm.io/datatypes"

	"github.com/civicdesk/civicdesk/internal/shared/constants"
)

type NotificationModel struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      uint           `gorm:"not null;index:idx_notification_user_read"`
	ComplaintID *uint          `gorm:"index"`
	Kind        string         `gorm:"size:30;not null"`
	Message     string         `gorm:"size:500;not null"`
	IsRead      bool           `gorm:"not null;default:false;index:idx_notification_user_read"`
	Payload     datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
