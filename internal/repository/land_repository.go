package repository

import (
	"context"
	"fmt"
	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"
)

type LandRepository struct {
	store store.RecordStore
}

func NewLandRepository(s store.RecordStore) *LandRepository {
	return &LandRepository{store: s}
}

func landPath(id string) string {
	return models.CollectionLands + "/" + id
}

func (r *LandRepository) Create(ctx context.Context, land *models.Land) (string, error) {
	record, err := utils.ToRecord(land)
	if err != nil {
		return "", fmt.Errorf("failed to encode land: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionLands, record)
	if err != nil {
		return "", fmt.Errorf("failed to create land: %w", err)
	}
	return key, nil
}

func (r *LandRepository) GetByID(ctx context.Context, id string) (*models.Land, error) {
	record, err := r.store.Get(ctx, landPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get land %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("land %s: %w", id, models.ErrNotFound)
	}

	var land models.Land
	if err := utils.FromRecord(record, &land); err != nil {
		return nil, fmt.Errorf("failed to decode land %s: %w", id, err)
	}
	land.ID = id
	return &land, nil
}

func (r *LandRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, landPath(id), partial); err != nil {
		return fmt.Errorf("failed to update land %s: %w", id, err)
	}
	return nil
}

func (r *LandRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, landPath(id)); err != nil {
		return fmt.Errorf("failed to delete land %s: %w", id, err)
	}
	return nil
}

// GetByFarmerID uses the store's child-equality query instead of a full scan.
func (r *LandRepository) GetByFarmerID(ctx context.Context, farmerID string) (map[string]models.Land, error) {
	records, err := r.store.QueryChildEqual(ctx, models.CollectionLands, "farmer_id", farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lands by farmer: %w", err)
	}

	lands := make(map[string]models.Land)
	for key, record := range records {
		var land models.Land
		if err := utils.FromRecord(record, &land); err != nil {
			return nil, fmt.Errorf("failed to decode land %s: %w", key, err)
		}
		land.ID = key
		lands[key] = land
	}
	return lands, nil
}

func (r *LandRepository) GetAll(ctx context.Context) (map[string]models.Land, error) {
	records, err := r.store.GetCollection(ctx, models.CollectionLands)
	if err != nil {
		return nil, fmt.Errorf("failed to get lands: %w", err)
	}

	lands := make(map[string]models.Land)
	for key, record := range records {
		var land models.Land
		if err := utils.FromRecord(record, &land); err != nil {
			return nil, fmt.Errorf("failed to decode land %s: %w", key, err)
		}
		land.ID = key
		lands[key] = land
	}
	return lands, nil
}
