package services

import (
	"context"
	"fmt"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
)

type PolicyService struct {
	policyRepo *repository.PolicyRepository
}

func NewPolicyService(policyRepo *repository.PolicyRepository) *PolicyService {
	return &PolicyService{policyRepo: policyRepo}
}

func (s *PolicyService) CreatePolicy(ctx context.Context, req models.CreatePolicyRequest) (string, error) {
	if req.Name == "" {
		return "", fmt.Errorf("%w: missing required field %q", models.ErrValidation, "name")
	}
	if req.CoverageAmount <= 0 {
		return "", fmt.Errorf("%w: coverage_amount must be positive", models.ErrValidation)
	}
	if req.PremiumRate <= 0 {
		return "", fmt.Errorf("%w: premium_rate must be positive", models.ErrValidation)
	}
	if req.DurationMonths <= 0 {
		return "", fmt.Errorf("%w: duration_months must be positive", models.ErrValidation)
	}
	for _, peril := range req.CoveredPerils {
		if !peril.IsValid() {
			return "", fmt.Errorf("%w: invalid covered peril %q", models.ErrValidation, peril)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	policy := &models.Policy{
		Name:           req.Name,
		Description:    req.Description,
		CropType:       req.CropType,
		CoverageAmount: req.CoverageAmount,
		PremiumRate:    req.PremiumRate,
		DurationMonths: req.DurationMonths,
		CoveredPerils:  req.CoveredPerils,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return s.policyRepo.Create(ctx, policy)
}

func (s *PolicyService) GetPolicy(ctx context.Context, id string) (*models.Policy, error) {
	return s.policyRepo.GetByID(ctx, id)
}

func (s *PolicyService) ListPolicies(ctx context.Context, cropType string, activeOnly bool) (map[string]models.Policy, error) {
	return s.policyRepo.GetAll(ctx, cropType, activeOnly)
}

func (s *PolicyService) UpdatePolicy(ctx context.Context, id string, req models.UpdatePolicyRequest) (*models.Policy, error) {
	if _, err := s.policyRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CropType != nil {
		updates["crop_type"] = *req.CropType
	}
	if req.CoverageAmount != nil {
		if *req.CoverageAmount <= 0 {
			return nil, fmt.Errorf("%w: coverage_amount must be positive", models.ErrValidation)
		}
		updates["coverage_amount"] = *req.CoverageAmount
	}
	if req.PremiumRate != nil {
		if *req.PremiumRate <= 0 {
			return nil, fmt.Errorf("%w: premium_rate must be positive", models.ErrValidation)
		}
		updates["premium_rate"] = *req.PremiumRate
	}
	if req.DurationMonths != nil {
		if *req.DurationMonths <= 0 {
			return nil, fmt.Errorf("%w: duration_months must be positive", models.ErrValidation)
		}
		updates["duration_months"] = *req.DurationMonths
	}
	if req.CoveredPerils != nil {
		for _, peril := range req.CoveredPerils {
			if !peril.IsValid() {
				return nil, fmt.Errorf("%w: invalid covered peril %q", models.ErrValidation, peril)
			}
		}
		updates["covered_perils"] = req.CoveredPerils
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if err := s.policyRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.policyRepo.GetByID(ctx, id)
}

func (s *PolicyService) DeletePolicy(ctx context.Context, id string) error {
	if _, err := s.policyRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.policyRepo.Delete(ctx, id)
}
