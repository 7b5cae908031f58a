package services

import (
	"context"
	"fmt"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
	"insurance-service/pkg/utils"
)

type FarmerService struct {
	farmerRepo *repository.FarmerRepository
}

func NewFarmerService(farmerRepo *repository.FarmerRepository) *FarmerService {
	return &FarmerService{farmerRepo: farmerRepo}
}

func (s *FarmerService) CreateFarmer(ctx context.Context, req models.CreateFarmerRequest) (string, error) {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", req.FullName},
		{"email", req.Email},
		{"phone", req.Phone},
	}
	for _, field := range required {
		if field.value == "" {
			return "", fmt.Errorf("%w: missing required field %q", models.ErrValidation, field.name)
		}
	}
	if _, err := utils.ValidateEmail(req.Email); err != nil {
		return "", fmt.Errorf("%w: %s", models.ErrValidation, err)
	}
	if _, err := utils.ValidatePhone(req.Phone); err != nil {
		return "", fmt.Errorf("%w: %s", models.ErrValidation, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	farmer := &models.Farmer{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Region:    req.Region,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.farmerRepo.Create(ctx, farmer)
}

func (s *FarmerService) GetFarmer(ctx context.Context, id string) (*models.Farmer, error) {
	return s.farmerRepo.GetByID(ctx, id)
}

func (s *FarmerService) GetFarmerByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	return s.farmerRepo.GetByEmail(ctx, email)
}

func (s *FarmerService) ListFarmers(ctx context.Context, region string) (map[string]models.Farmer, error) {
	return s.farmerRepo.GetAll(ctx, region)
}

func (s *FarmerService) UpdateFarmer(ctx context.Context, id string, req models.UpdateFarmerRequest) (*models.Farmer, error) {
	if _, err := s.farmerRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		if _, err := utils.ValidatePhone(*req.Phone); err != nil {
			return nil, fmt.Errorf("%w: %s", models.ErrValidation, err)
		}
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}

	if err := s.farmerRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.farmerRepo.GetByID(ctx, id)
}
