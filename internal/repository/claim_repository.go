package repository

import (
	"context"
	"fmt"
	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"
)

type ClaimRepository struct {
	store store.RecordStore
}

func NewClaimRepository(s store.RecordStore) *ClaimRepository {
	return &ClaimRepository{store: s}
}

func claimPath(id string) string {
	return models.CollectionClaims + "/" + id
}

// Create persists a new claim and returns the store-generated key.
func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) (string, error) {
	record, err := utils.ToRecord(claim)
	if err != nil {
		return "", fmt.Errorf("failed to encode claim: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionClaims, record)
	if err != nil {
		return "", fmt.Errorf("failed to create claim: %w", err)
	}
	return key, nil
}

// GetByID retrieves a claim by its key.
func (r *ClaimRepository) GetByID(ctx context.Context, id string) (*models.Claim, error) {
	record, err := r.store.Get(ctx, claimPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get claim %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("claim %s: %w", id, models.ErrNotFound)
	}

	var claim models.Claim
	if err := utils.FromRecord(record, &claim); err != nil {
		return nil, fmt.Errorf("failed to decode claim %s: %w", id, err)
	}
	claim.ID = id
	return &claim, nil
}

// Update merges the given fields into the stored claim record.
func (r *ClaimRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, claimPath(id), partial); err != nil {
		return fmt.Errorf("failed to update claim %s: %w", id, err)
	}
	return nil
}

// GetAll retrieves the full claims collection, then applies each provided
// filter as a linear in-memory intersection (AND semantics).
func (r *ClaimRepository) GetAll(ctx context.Context, filter models.ClaimFilter) (map[string]models.Claim, error) {
	records, err := r.store.GetCollection(ctx, models.CollectionClaims)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}

	claims := make(map[string]models.Claim)
	for key, record := range records {
		var claim models.Claim
		if err := utils.FromRecord(record, &claim); err != nil {
			return nil, fmt.Errorf("failed to decode claim %s: %w", key, err)
		}
		claim.ID = key

		if filter.FarmerID != "" && claim.FarmerID != filter.FarmerID {
			continue
		}
		if filter.Status != "" && claim.Status != filter.Status {
			continue
		}
		if filter.InspectorID != "" && (claim.InspectorID == nil || *claim.InspectorID != filter.InspectorID) {
			continue
		}

		claims[key] = claim
	}
	return claims, nil
}
