package repository

import (
	"context"
	"fmt"
	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"
)

type RiskAlertRepository struct {
	store store.RecordStore
}

func NewRiskAlertRepository(s store.RecordStore) *RiskAlertRepository {
	return &RiskAlertRepository{store: s}
}

func riskAlertPath(id string) string {
	return models.CollectionRiskAlerts + "/" + id
}

func (r *RiskAlertRepository) Create(ctx context.Context, alert *models.RiskAlert) (string, error) {
	record, err := utils.ToRecord(alert)
	if err != nil {
		return "", fmt.Errorf("failed to encode risk alert: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionRiskAlerts, record)
	if err != nil {
		return "", fmt.Errorf("failed to create risk alert: %w", err)
	}
	return key, nil
}

func (r *RiskAlertRepository) GetByID(ctx context.Context, id string) (*models.RiskAlert, error) {
	record, err := r.store.Get(ctx, riskAlertPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get risk alert %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("risk alert %s: %w", id, models.ErrNotFound)
	}

	var alert models.RiskAlert
	if err := utils.FromRecord(record, &alert); err != nil {
		return nil, fmt.Errorf("failed to decode risk alert %s: %w", id, err)
	}
	alert.ID = id
	return &alert, nil
}

func (r *RiskAlertRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, riskAlertPath(id), partial); err != nil {
		return fmt.Errorf("failed to update risk alert %s: %w", id, err)
	}
	return nil
}

func (r *RiskAlertRepository) GetAll(ctx context.Context, filter models.AlertFilter) (map[string]models.RiskAlert, error) {
	records, err := r.store.GetCollection(ctx, models.CollectionRiskAlerts)
	if err != nil {
		return nil, fmt.Errorf("failed to get risk alerts: %w", err)
	}

	alerts := make(map[string]models.RiskAlert)
	for key, record := range records {
		var alert models.RiskAlert
		if err := utils.FromRecord(record, &alert); err != nil {
			return nil, fmt.Errorf("failed to decode risk alert %s: %w", key, err)
		}
		alert.ID = key

		if filter.FarmerID != "" && alert.FarmerID != filter.FarmerID {
			continue
		}
		if filter.IsRead != nil && alert.IsRead != *filter.IsRead {
			continue
		}

		alerts[key] = alert
	}
	return alerts, nil
}
