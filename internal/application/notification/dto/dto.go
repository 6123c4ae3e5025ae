package dto

import (
	"time"

	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
)

type NotificationDTO struct {
	ID          uint           `json:"id"`
	ComplaintID *uint          `json:"complaint"`
	Kind        string         `json:"kind"`
	Message     string         `json:"message"`
	Payload     map[string]any `json:"payload,omitempty"`
	IsRead      bool           `json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ListResponse struct {
	Items       []*NotificationDTO `json:"results"`
	Total       int64              `json:"count"`
	UnreadCount int64              `json:"unread_count"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
		ID:          n.ID(),
		ComplaintID: n.ComplaintID(),
		Kind:        string(n.Kind()),
		Message:     n.Message(),
		Payload:     n.Payload(),
		IsRead:      n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
}

func ToNotificationDTOList(items []*notification.Notification) []*NotificationDTO {
	if len(items) == 0 {
		return []*NotificationDTO{}
	}
	return mapper.MapSlice(items, ToNotificationDTO)
}
