package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	rows := make([]*models.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		row, err := r.mapper.ToModel(n)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(rows).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	for i, n := range notifications {
		if err := n.SetID(rows[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var rows []*models.NotificationModel
	if err := query.
		Order("created_at DESC").Order("id DESC").
		Scopes(db.Paginate(page, pageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]*notification.Notification, 0, len(rows))
	for _, row := range rows {
		n, err := r.mapper.ToDomain(row)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}
