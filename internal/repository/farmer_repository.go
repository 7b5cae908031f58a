package repository

import (
	"context"
	"fmt"
	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"
)

type FarmerRepository struct {
	store store.RecordStore
}

func NewFarmerRepository(s store.RecordStore) *FarmerRepository {
	return &FarmerRepository{store: s}
}

func farmerPath(id string) string {
	return models.CollectionFarmers + "/" + id
}

func (r *FarmerRepository) Create(ctx context.Context, farmer *models.Farmer) (string, error) {
	record, err := utils.ToRecord(farmer)
	if err != nil {
		return "", fmt.Errorf("failed to encode farmer: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionFarmers, record)
	if err != nil {
		return "", fmt.Errorf("failed to create farmer: %w", err)
	}
	return key, nil
}

func (r *FarmerRepository) GetByID(ctx context.Context, id string) (*models.Farmer, error) {
	record, err := r.store.Get(ctx, farmerPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get farmer %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("farmer %s: %w", id, models.ErrNotFound)
	}

	var farmer models.Farmer
	if err := utils.FromRecord(record, &farmer); err != nil {
		return nil, fmt.Errorf("failed to decode farmer %s: %w", id, err)
	}
	farmer.ID = id
	return &farmer, nil
}

func (r *FarmerRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, farmerPath(id), partial); err != nil {
		return fmt.Errorf("failed to update farmer %s: %w", id, err)
	}
	return nil
}

func (r *FarmerRepository) GetAll(ctx context.Context, region string) (map[string]models.Farmer, error) {
	records, err := r.store.GetCollection(ctx, models.CollectionFarmers)
	if err != nil {
		return nil, fmt.Errorf("failed to get farmers: %w", err)
	}

	farmers := make(map[string]models.Farmer)
	for key, record := range records {
		var farmer models.Farmer
		if err := utils.FromRecord(record, &farmer); err != nil {
			return nil, fmt.Errorf("failed to decode farmer %s: %w", key, err)
		}
		farmer.ID = key

		if region != "" && farmer.Region != region {
			continue
		}

		farmers[key] = farmer
	}
	return farmers, nil
}

// GetByEmail finds a farmer by the email child field using the store's
// equality query.
func (r *FarmerRepository) GetByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	records, err := r.store.QueryChildEqual(ctx, models.CollectionFarmers, "email", email)
	if err != nil {
		return nil, fmt.Errorf("failed to query farmers by email: %w", err)
	}

	for key, record := range records {
		var farmer models.Farmer
		if err := utils.FromRecord(record, &farmer); err != nil {
			return nil, fmt.Errorf("failed to decode farmer %s: %w", key, err)
		}
		farmer.ID = key
		return &farmer, nil
	}
	return nil, fmt.Errorf("farmer with email %s: %w", email, models.ErrNotFound)
}
