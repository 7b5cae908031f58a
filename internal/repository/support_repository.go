package repository

import (
	"context"
	"fmt"
	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"
)

type SupportRepository struct {
	store store.RecordStore
}

func NewSupportRepository(s store.RecordStore) *SupportRepository {
	return &SupportRepository{store: s}
}

func supportPath(id string) string {
	return models.CollectionSupportMessages + "/" + id
}

func (r *SupportRepository) Create(ctx context.Context, message *models.SupportMessage) (string, error) {
	record, err := utils.ToRecord(message)
	if err != nil {
		return "", fmt.Errorf("failed to encode support message: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionSupportMessages, record)
	if err != nil {
		return "", fmt.Errorf("failed to create support message: %w", err)
	}
	return key, nil
}

func (r *SupportRepository) GetByID(ctx context.Context, id string) (*models.SupportMessage, error) {
	record, err := r.store.Get(ctx, supportPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get support message %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("support message %s: %w", id, models.ErrNotFound)
	}

	var message models.SupportMessage
	if err := utils.FromRecord(record, &message); err != nil {
		return nil, fmt.Errorf("failed to decode support message %s: %w", id, err)
	}
	message.ID = id
	return &message, nil
}

func (r *SupportRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, supportPath(id), partial); err != nil {
		return fmt.Errorf("failed to update support message %s: %w", id, err)
	}
	return nil
}

func (r *SupportRepository) GetAll(ctx context.Context, userID string, status models.SupportStatus) (map[string]models.SupportMessage, error) {
	records, err := r.store.GetCollection(ctx, models.CollectionSupportMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to get support messages: %w", err)
	}

	messages := make(map[string]models.SupportMessage)
	for key, record := range records {
		var message models.SupportMessage
		if err := utils.FromRecord(record, &message); err != nil {
			return nil, fmt.Errorf("failed to decode support message %s: %w", key, err)
		}
		message.ID = key

		if userID != "" && message.UserID != userID {
			continue
		}
		if status != "" && message.Status != status {
			continue
		}

		messages[key] = message
	}
	return messages, nil
}
