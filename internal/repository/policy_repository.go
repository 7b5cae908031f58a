package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const (
	policyCacheKey = "insurance_policies:all"
	policyCacheTTL = 5 * time.Minute
)

// PolicyRepository caches the policy catalog in Redis; the catalog is
// read-heavy and changes rarely. A nil redis client disables the cache.
type PolicyRepository struct {
	store       store.RecordStore
	redisClient *redis.Client
}

func NewPolicyRepository(s store.RecordStore, redisClient *redis.Client) *PolicyRepository {
	return &PolicyRepository{store: s, redisClient: redisClient}
}

func policyPath(id string) string {
	return models.CollectionPolicies + "/" + id
}

func (r *PolicyRepository) Create(ctx context.Context, policy *models.Policy) (string, error) {
	record, err := utils.ToRecord(policy)
	if err != nil {
		return "", fmt.Errorf("failed to encode policy: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionPolicies, record)
	if err != nil {
		return "", fmt.Errorf("failed to create policy: %w", err)
	}

	r.invalidateCache(ctx)
	return key, nil
}

func (r *PolicyRepository) GetByID(ctx context.Context, id string) (*models.Policy, error) {
	record, err := r.store.Get(ctx, policyPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get policy %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("policy %s: %w", id, models.ErrNotFound)
	}

	var policy models.Policy
	if err := utils.FromRecord(record, &policy); err != nil {
		return nil, fmt.Errorf("failed to decode policy %s: %w", id, err)
	}
	policy.ID = id
	return &policy, nil
}

func (r *PolicyRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, policyPath(id), partial); err != nil {
		return fmt.Errorf("failed to update policy %s: %w", id, err)
	}

	r.invalidateCache(ctx)
	return nil
}

func (r *PolicyRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, policyPath(id)); err != nil {
		return fmt.Errorf("failed to delete policy %s: %w", id, err)
	}

	r.invalidateCache(ctx)
	return nil
}

// GetAll serves the unfiltered catalog from cache when possible; filters are
// applied after retrieval.
func (r *PolicyRepository) GetAll(ctx context.Context, cropType string, activeOnly bool) (map[string]models.Policy, error) {
	policies, err := r.getCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]models.Policy)
	for key, policy := range policies {
		if cropType != "" && policy.CropType != cropType {
			continue
		}
		if activeOnly && !policy.Active {
			continue
		}
		result[key] = policy
	}
	return result, nil
}

func (r *PolicyRepository) getCatalog(ctx context.Context) (map[string]models.Policy, error) {
	if r.redisClient != nil {
		data, err := r.redisClient.Get(ctx, policyCacheKey).Bytes()
		if err == nil {
			var cached map[string]models.Policy
			if err := utils.DeserializeModel(data, &cached); err == nil {
				// The ID field is not serialized; restore it from the map key.
				for key, policy := range cached {
					policy.ID = key
					cached[key] = policy
				}
				return cached, nil
			}
		} else if err != redis.Nil {
			slog.Error("policy cache read failed", "error", err)
		}
	}

	records, err := r.store.GetCollection(ctx, models.CollectionPolicies)
	if err != nil {
		return nil, fmt.Errorf("failed to get policies: %w", err)
	}

	policies := make(map[string]models.Policy)
	for key, record := range records {
		var policy models.Policy
		if err := utils.FromRecord(record, &policy); err != nil {
			return nil, fmt.Errorf("failed to decode policy %s: %w", key, err)
		}
		policy.ID = key
		policies[key] = policy
	}

	if r.redisClient != nil {
		data, err := utils.SerializeModel(policies)
		if err == nil {
			if err := r.redisClient.Set(ctx, policyCacheKey, data, policyCacheTTL).Err(); err != nil {
				slog.Error("policy cache write failed", "error", err)
			}
		}
	}

	return policies, nil
}

func (r *PolicyRepository) invalidateCache(ctx context.Context) {
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.Del(ctx, policyCacheKey).Err(); err != nil {
		slog.Error("policy cache invalidation failed", "error", err)
	}
}
