package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type mockNotificationRepository struct {
	GetByIDFunc      func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserIDFunc func(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error)
	CountUnreadFunc  func(ctx context.Context, userID uint) (int64, error)
	MarkAsReadFunc   func(ctx context.Context, id uint) error

	markedRead []uint
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, items []*notification.Notification) error {
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, notification.ErrNotificationNotFound
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	m.markedRead = append(m.markedRead, id)
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, id)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)           {}
func (nopLogger) Info(msg string, args ...any)            {}
func (nopLogger) Warn(msg string, args ...any)            {}
func (nopLogger) Error(msg string, args ...any)           {}
func (l nopLogger) With(args ...any) logger.Interface     { return l }
func (l nopLogger) Named(name string) logger.Interface    { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...any) {}
func (nopLogger) Infow(msg string, keysAndValues ...any)  {}
func (nopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (nopLogger) Errorw(msg string, keysAndValues ...any) {}
