package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/notification/dto"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*dto.ListResponse, error)
}

type MarkNotificationAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkNotificationAsReadCommand) (*dto.NotificationDTO, error)
}
