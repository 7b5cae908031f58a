package repository

import (
	"context"
	"fmt"
	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"
)

type NotificationRepository struct {
	store store.RecordStore
}

func NewNotificationRepository(s store.RecordStore) *NotificationRepository {
	return &NotificationRepository{store: s}
}

func notificationPath(id string) string {
	return models.CollectionNotifications + "/" + id
}

func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) (string, error) {
	record, err := utils.ToRecord(notification)
	if err != nil {
		return "", fmt.Errorf("failed to encode notification: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionNotifications, record)
	if err != nil {
		return "", fmt.Errorf("failed to create notification: %w", err)
	}
	return key, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	record, err := r.store.Get(ctx, notificationPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get notification %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("notification %s: %w", id, models.ErrNotFound)
	}

	var notification models.Notification
	if err := utils.FromRecord(record, &notification); err != nil {
		return nil, fmt.Errorf("failed to decode notification %s: %w", id, err)
	}
	notification.ID = id
	return &notification, nil
}

func (r *NotificationRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, notificationPath(id), partial); err != nil {
		return fmt.Errorf("failed to update notification %s: %w", id, err)
	}
	return nil
}

func (r *NotificationRepository) GetAll(ctx context.Context, filter models.NotificationFilter) (map[string]models.Notification, error) {
	records, err := r.store.GetCollection(ctx, models.CollectionNotifications)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make(map[string]models.Notification)
	for key, record := range records {
		var notification models.Notification
		if err := utils.FromRecord(record, &notification); err != nil {
			return nil, fmt.Errorf("failed to decode notification %s: %w", key, err)
		}
		notification.ID = key

		if filter.UserID != "" && notification.UserID != filter.UserID {
			continue
		}
		if filter.IsRead != nil && notification.IsRead != *filter.IsRead {
			continue
		}

		notifications[key] = notification
	}
	return notifications, nil
}
