package services

import (
	"context"
	"fmt"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
	"insurance-service/pkg/utils"
)

type InspectorService struct {
	inspectorRepo *repository.InspectorRepository
}

func NewInspectorService(inspectorRepo *repository.InspectorRepository) *InspectorService {
	return &InspectorService{inspectorRepo: inspectorRepo}
}

func (s *InspectorService) CreateInspector(ctx context.Context, req models.CreateInspectorRequest) (string, error) {
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

	now := time.Now().UTC().Format(time.RFC3339)
	inspector := &models.Inspector{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Region:    req.Region,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.inspectorRepo.Create(ctx, inspector)
}

func (s *InspectorService) GetInspector(ctx context.Context, id string) (*models.Inspector, error) {
	return s.inspectorRepo.GetByID(ctx, id)
}

func (s *InspectorService) ListInspectors(ctx context.Context, region string, activeOnly bool) (map[string]models.Inspector, error) {
	return s.inspectorRepo.GetAll(ctx, region, activeOnly)
}

func (s *InspectorService) UpdateInspector(ctx context.Context, id string, req models.UpdateInspectorRequest) (*models.Inspector, error) {
	if _, err := s.inspectorRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if err := s.inspectorRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.inspectorRepo.GetByID(ctx, id)
}
