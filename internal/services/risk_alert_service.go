package services

import (
	"context"
	"fmt"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
)

// RiskAlertService manages hazard-feed alerts: same read-state semantics as
// notifications, but records are ingested from external weather/pest feeds.
type RiskAlertService struct {
	alertRepo *repository.RiskAlertRepository
}

func NewRiskAlertService(alertRepo *repository.RiskAlertRepository) *RiskAlertService {
	return &RiskAlertService{alertRepo: alertRepo}
}

// CreateAlert ingests an alert from an external hazard feed.
func (s *RiskAlertService) CreateAlert(ctx context.Context, req models.CreateRiskAlertRequest) (string, error) {
	required := []struct {
		name  string
		value string
	}{
		{"farmer_id", req.FarmerID},
		{"alert_type", string(req.AlertType)},
		{"severity", string(req.Severity)},
		{"title", req.Title},
		{"message", req.Message},
	}
	for _, field := range required {
		if field.value == "" {
			return "", fmt.Errorf("%w: missing required field %q", models.ErrValidation, field.name)
		}
	}

	alert := &models.RiskAlert{
		FarmerID:  req.FarmerID,
		AlertType: req.AlertType,
		Severity:  req.Severity,
		Title:     req.Title,
		Message:   req.Message,
		LandID:    req.LandID,
		IsRead:    false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return s.alertRepo.Create(ctx, alert)
}

// MarkRead marks one alert as read, idempotently.
func (s *RiskAlertService) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing required field \"id\"", models.ErrValidation)
	}

	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if alert.IsRead {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return s.alertRepo.Update(ctx, id, map[string]any{
		"is_read": true,
		"read_at": now,
	})
}

// MarkAllRead marks each of the farmer's unread alerts individually.
func (s *RiskAlertService) MarkAllRead(ctx context.Context, farmerID string) (int, error) {
	if farmerID == "" {
		return 0, fmt.Errorf("%w: missing required field \"farmer_id\"", models.ErrValidation)
	}

	alerts, err := s.alertRepo.GetAll(ctx, models.AlertFilter{FarmerID: farmerID})
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	updated := 0
	for key, alert := range alerts {
		if alert.IsRead {
			continue
		}
		err := s.alertRepo.Update(ctx, key, map[string]any{
			"is_read": true,
			"read_at": now,
		})
		if err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// List returns alerts matching the filter.
func (s *RiskAlertService) List(ctx context.Context, filter models.AlertFilter) (map[string]models.RiskAlert, error) {
	return s.alertRepo.GetAll(ctx, filter)
}
