package notification

import "context"

type Repository interface {
	BulkCreate(ctx context.Context, notifications []*Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
}
