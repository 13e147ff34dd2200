package service

import (
	"context"
	"time"

	"buglens/internal/domain"
	"buglens/internal/storage"
)

// ListNotifications возвращает уведомления получателя, непрочитанные первыми
func (s *Service) ListNotifications(outerCtx context.Context, recipientID string, onlyUnread bool) ([]domain.Notification, error) {
	const op = "service.ListNotifications"
	defer observe(op, time.Now())
	var notifications []domain.Notification

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.NotificationRepo().ListByRecipient(ctx, recipientID, onlyUnread)
		if err != nil {
			return err
		}
		notifications = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return notifications, nil
}

// MarkNotificationRead помечает уведомление прочитанным
func (s *Service) MarkNotificationRead(outerCtx context.Context, notificationID, recipientID string) error {
	const op = "service.MarkNotificationRead"
	defer observe(op, time.Now())

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.NotificationRepo().MarkRead(ctx, notificationID, recipientID)
	})

	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	return nil
}

// MarkAllNotificationsRead помечает все уведомления получателя прочитанными
func (s *Service) MarkAllNotificationsRead(outerCtx context.Context, recipientID string) (int, error) {
	const op = "service.MarkAllNotificationsRead"
	defer observe(op, time.Now())
	var affected int

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		n, err := tx.NotificationRepo().MarkAllRead(ctx, recipientID)
		if err != nil {
			return err
		}
		affected = n
		return nil
	})

	if err != nil {
		return 0, s.formatError(outerCtx, op, err)
	}

	return affected, nil
}
