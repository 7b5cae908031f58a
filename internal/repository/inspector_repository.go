package repository

import (
	"context"
	"fmt"
	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"
)

type InspectorRepository struct {
	store store.RecordStore
}

func NewInspectorRepository(s store.RecordStore) *InspectorRepository {
	return &InspectorRepository{store: s}
}

func inspectorPath(id string) string {
	return models.CollectionInspectors + "/" + id
}

func (r *InspectorRepository) Create(ctx context.Context, inspector *models.Inspector) (string, error) {
	record, err := utils.ToRecord(inspector)
	if err != nil {
		return "", fmt.Errorf("failed to encode inspector: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionInspectors, record)
	if err != nil {
		return "", fmt.Errorf("failed to create inspector: %w", err)
	}
	return key, nil
}

func (r *InspectorRepository) GetByID(ctx context.Context, id string) (*models.Inspector, error) {
	record, err := r.store.Get(ctx, inspectorPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get inspector %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("inspector %s: %w", id, models.ErrNotFound)
	}

	var inspector models.Inspector
	if err := utils.FromRecord(record, &inspector); err != nil {
		return nil, fmt.Errorf("failed to decode inspector %s: %w", id, err)
	}
	inspector.ID = id
	return &inspector, nil
}

func (r *InspectorRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, inspectorPath(id), partial); err != nil {
		return fmt.Errorf("failed to update inspector %s: %w", id, err)
	}
	return nil
}

func (r *InspectorRepository) GetAll(ctx context.Context, region string, activeOnly bool) (map[string]models.Inspector, error) {
	records, err := r.store.GetCollection(ctx, models.CollectionInspectors)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspectors: %w", err)
	}

	inspectors := make(map[string]models.Inspector)
	for key, record := range records {
		var inspector models.Inspector
		if err := utils.FromRecord(record, &inspector); err != nil {
			return nil, fmt.Errorf("failed to decode inspector %s: %w", key, err)
		}
		inspector.ID = key

		if region != "" && inspector.Region != region {
			continue
		}
		if activeOnly && !inspector.Active {
			continue
		}

		inspectors[key] = inspector
	}
	return inspectors, nil
}
