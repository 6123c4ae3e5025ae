package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/notification/dto"
	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type MarkNotificationAsReadCommand struct {
	ID     uint
	UserID uint
}

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute hides notifications addressed to someone else behind a not-found.
func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, cmd MarkNotificationAsReadCommand) (*dto.NotificationDTO, error) {
	uc.logger.Infow("executing mark notification as read use case", "id", cmd.ID, "user_id", cmd.UserID)

	n, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		if stderrors.Is(err, notification.ErrNotificationNotFound) {
			return nil, errors.NewNotFoundError("Notification not found.")
		}
		uc.logger.Errorw("failed to find notification", "id", cmd.ID, "error", err)
		return nil, errors.NewInternalError("failed to load notification")
	}

	if !n.BelongsTo(cmd.UserID) {
		uc.logger.Warnw("notification belongs to another user", "id", cmd.ID, "user_id", cmd.UserID)
		return nil, errors.NewNotFoundError("Notification not found.")
	}

	if n.MarkAsRead() {
		if err := uc.repo.MarkAsRead(ctx, n.ID()); err != nil {
			uc.logger.Errorw("failed to persist notification update", "id", cmd.ID, "error", err)
			return nil, errors.NewInternalError("failed to update notification")
		}
	}

	return dto.ToNotificationDTO(n), nil
}
