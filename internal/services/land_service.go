package services

import (
	"context"
	"fmt"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
	"insurance-service/pkg/utils"
)

type LandService struct {
	landRepo   *repository.LandRepository
	farmerRepo *repository.FarmerRepository
}

func NewLandService(landRepo *repository.LandRepository, farmerRepo *repository.FarmerRepository) *LandService {
	return &LandService{landRepo: landRepo, farmerRepo: farmerRepo}
}

// CreateLand registers a parcel. When a boundary polygon is supplied it is
// validated and the parcel area is derived from it, overriding any
// caller-supplied value.
func (s *LandService) CreateLand(ctx context.Context, req models.CreateLandRequest) (string, error) {
	required := []struct {
		name  string
		value string
	}{
		{"farmer_id", req.FarmerID},
		{"name", req.Name},
	}
	for _, field := range required {
		if field.value == "" {
			return "", fmt.Errorf("%w: missing required field %q", models.ErrValidation, field.name)
		}
	}

	if _, err := s.farmerRepo.GetByID(ctx, req.FarmerID); err != nil {
		return "", fmt.Errorf("referenced farmer: %w", err)
	}

	area := req.AreaHectares
	if req.Boundary != nil {
		if err := req.Boundary.Validate(); err != nil {
			return "", fmt.Errorf("%w: %s", models.ErrValidation, err)
		}
		derived, err := req.Boundary.AreaHectares()
		if err != nil {
			return "", fmt.Errorf("%w: %s", models.ErrValidation, err)
		}
		area = derived
	}

	now := time.Now().UTC().Format(time.RFC3339)
	land := &models.Land{
		FarmerID:     req.FarmerID,
		Name:         req.Name,
		AreaHectares: area,
		SoilType:     req.SoilType,
		CropType:     req.CropType,
		Location:     req.Location,
		Boundary:     req.Boundary,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.landRepo.Create(ctx, land)
}

func (s *LandService) GetLand(ctx context.Context, id string) (*models.Land, error) {
	return s.landRepo.GetByID(ctx, id)
}

func (s *LandService) ListLands(ctx context.Context, farmerID string) (map[string]models.Land, error) {
	if farmerID != "" {
		return s.landRepo.GetByFarmerID(ctx, farmerID)
	}
	return s.landRepo.GetAll(ctx)
}

func (s *LandService) UpdateLand(ctx context.Context, id string, req models.UpdateLandRequest) (*models.Land, error) {
	if _, err := s.landRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SoilType != nil {
		updates["soil_type"] = *req.SoilType
	}
	if req.CropType != nil {
		updates["crop_type"] = *req.CropType
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Boundary != nil {
		if err := req.Boundary.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", models.ErrValidation, err)
		}
		area, err := req.Boundary.AreaHectares()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", models.ErrValidation, err)
		}
		boundary, err := utils.ToRecord(req.Boundary)
		if err != nil {
			return nil, fmt.Errorf("failed to encode boundary: %w", err)
		}
		updates["boundary"] = boundary
		updates["area_hectares"] = area
	}

	if err := s.landRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.landRepo.GetByID(ctx, id)
}

func (s *LandService) DeleteLand(ctx context.Context, id string) error {
	if _, err := s.landRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.landRepo.Delete(ctx, id)
}
