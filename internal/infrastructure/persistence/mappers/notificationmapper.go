package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) (*models.NotificationModel, error)
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	var payload datatypes.JSON
	if len(n.Payload()) > 0 {
		raw, err := json.Marshal(n.Payload())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
		}
		payload = datatypes.JSON(raw)
	}

	return &models.NotificationModel{
		ID:          n.ID(),
		UserID:      n.UserID(),
		ComplaintID: n.ComplaintID(),
		Kind:        string(n.Kind()),
		Message:     n.Message(),
		IsRead:      n.IsRead(),
		Payload:     payload,
		CreatedAt:   n.CreatedAt().UnixMilli(),
	}, nil
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	var payload map[string]any
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification payload (id=%d): %w", model.ID, err)
		}
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.ComplaintID,
		notification.Kind(model.Kind),
		model.Message,
		payload,
		model.IsRead,
		millisToTime(model.CreatedAt),
	), nil
}
