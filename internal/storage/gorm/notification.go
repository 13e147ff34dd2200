package gorm

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository создаёт новый репозиторий уведомлений
func NewNotificationRepository(db *gorm.DB) storage.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create создаёт уведомление
func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return err
	}

	dbNotification := &Notification{
		NotificationID: n.ID,
		OrgID:          n.OrgID,
		RecipientID:    n.RecipientID,
		Kind:           string(n.Kind),
		Payload:        datatypes.JSON(payload),
	}

	if err := r.db.WithContext(ctx).Create(dbNotification).Error; err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("notification_id", n.ID).
			Msg("error creating notification")
		return err
	}

	n.CreatedAt = &dbNotification.CreatedAt
	return nil
}

// ListByRecipient возвращает уведомления получателя, непрочитанные первыми
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, onlyUnread bool) ([]domain.Notification, error) {
	query := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if onlyUnread {
		query = query.Where("read = false")
	}

	var dbNotifications []Notification
	if err := query.Order("read, created_at DESC").Find(&dbNotifications).Error; err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(dbNotifications))
	for i := range dbNotifications {
		n, err := mapNotificationToDomain(&dbNotifications[i])
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	return notifications, nil
}

// MarkRead помечает уведомление прочитанным.
// Фильтр по recipient_id не даёт пометить чужое уведомление.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	result := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("notification_id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("read", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления получателя прочитанными
func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("recipient_id = ? AND read = false", recipientID).
		Update("read", true)

	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

func mapNotificationToDomain(n *Notification) (*domain.Notification, error) {
	var payload map[string]any
	if len(n.Payload) > 0 {
		if err := json.Unmarshal(n.Payload, &payload); err != nil {
			return nil, err
		}
	}

	return &domain.Notification{
		ID:          n.NotificationID,
		OrgID:       n.OrgID,
		RecipientID: n.RecipientID,
		Kind:        domain.NotificationKind(n.Kind),
		Payload:     payload,
		Read:        n.Read,
		CreatedAt:   &n.CreatedAt,
	}, nil
}
