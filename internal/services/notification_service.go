package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"insurance-service/internal/event"
	"insurance-service/internal/models"
	"insurance-service/internal/repository"

	"github.com/google/uuid"
)

// PushPublisher publishes push delivery events for stored notifications.
type PushPublisher interface {
	Publish(ctx context.Context, event event.PushEventModel) error
}

type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	publisher        PushPublisher
}

// NewNotificationService creates the read-state manager and emission sink.
// A nil publisher disables push delivery; the stored record is the source of
// truth either way.
func NewNotificationService(notificationRepo *repository.NotificationRepository, publisher PushPublisher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// Emit appends one notification record addressed to userID and publishes a
// best-effort push event. A publish failure is logged, never surfaced: the
// record write already succeeded.
func (s *NotificationService) Emit(ctx context.Context, userID, title, message string, relatedType models.RelatedEntityType, relatedID string) (string, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	notification := &models.Notification{
		UserID:      userID,
		Title:       title,
		Message:     message,
		RelatedType: relatedType,
		RelatedID:   relatedID,
		IsRead:      false,
		CreatedAt:   now,
	}

	key, err := s.notificationRepo.Create(ctx, notification)
	if err != nil {
		return "", fmt.Errorf("failed to emit notification: %w", err)
	}

	if s.publisher != nil {
		pushErr := s.publisher.Publish(ctx, event.PushEventModel{
			EventID:        uuid.NewString(),
			NotificationID: key,
			UserID:         userID,
			Title:          title,
			Message:        message,
			RelatedType:    string(relatedType),
			RelatedID:      relatedID,
			CreatedAt:      time.Now().UTC(),
		})
		if pushErr != nil {
			slog.Error("Failed to publish push event", "notification_id", key, "error", pushErr)
		}
	}

	return key, nil
}

// MarkRead marks one notification as read. Idempotent: an already-read
// notification is left untouched.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing required field \"id\"", models.ErrValidation)
	}

	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.IsRead {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return s.notificationRepo.Update(ctx, id, map[string]any{
		"is_read": true,
		"read_at": now,
	})
}

// MarkAllRead scans the user's notifications and marks each unread one
// individually. No batch atomicity: a record created during the scan may be
// missed. Returns how many records were updated.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: missing required field \"user_id\"", models.ErrValidation)
	}

	notifications, err := s.notificationRepo.GetAll(ctx, models.NotificationFilter{UserID: userID})
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	updated := 0
	for key, notification := range notifications {
		if notification.IsRead {
			continue
		}
		err := s.notificationRepo.Update(ctx, key, map[string]any{
			"is_read": true,
			"read_at": now,
		})
		if err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// List returns notifications matching the filter.
func (s *NotificationService) List(ctx context.Context, filter models.NotificationFilter) (map[string]models.Notification, error) {
	return s.notificationRepo.GetAll(ctx, filter)
}

// Get retrieves a single notification.
func (s *NotificationService) Get(ctx context.Context, id string) (*models.Notification, error) {
	return s.notificationRepo.GetByID(ctx, id)
}
