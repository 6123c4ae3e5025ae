package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/notification/dto"
	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*dto.ListResponse, error) {
	uc.logger.Infow("executing list notifications use case", "user_id", query.UserID, "page", query.Page)

	if query.UserID == 0 {
		return nil, errors.NewUnauthorizedError("Authentication credentials were not provided.")
	}
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	items, total, err := uc.repo.ListByUserID(ctx, query.UserID, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	unread, err := uc.repo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	return &dto.ListResponse{
		Items:       dto.ToNotificationDTOList(items),
		Total:       total,
		UnreadCount: unread,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}, nil
}
