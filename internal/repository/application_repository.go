package repository

import (
	"context"
	"fmt"
	"insurance-service/internal/models"
	"insurance-service/internal/store"
	"insurance-service/pkg/utils"
)

type ApplicationRepository struct {
	store store.RecordStore
}

func NewApplicationRepository(s store.RecordStore) *ApplicationRepository {
	return &ApplicationRepository{store: s}
}

func applicationPath(id string) string {
	return models.CollectionApplications + "/" + id
}

func (r *ApplicationRepository) Create(ctx context.Context, application *models.InsuranceApplication) (string, error) {
	record, err := utils.ToRecord(application)
	if err != nil {
		return "", fmt.Errorf("failed to encode application: %w", err)
	}

	key, err := r.store.Push(ctx, models.CollectionApplications, record)
	if err != nil {
		return "", fmt.Errorf("failed to create application: %w", err)
	}
	return key, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*models.InsuranceApplication, error) {
	record, err := r.store.Get(ctx, applicationPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get application %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("application %s: %w", id, models.ErrNotFound)
	}

	var application models.InsuranceApplication
	if err := utils.FromRecord(record, &application); err != nil {
		return nil, fmt.Errorf("failed to decode application %s: %w", id, err)
	}
	application.ID = id
	return &application, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, id string, partial map[string]any) error {
	if err := r.store.Update(ctx, applicationPath(id), partial); err != nil {
		return fmt.Errorf("failed to update application %s: %w", id, err)
	}
	return nil
}

func (r *ApplicationRepository) GetAll(ctx context.Context, filter models.ApplicationFilter) (map[string]models.InsuranceApplication, error) {
	records, err := r.store.GetCollection(ctx, models.CollectionApplications)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}

	applications := make(map[string]models.InsuranceApplication)
	for key, record := range records {
		var application models.InsuranceApplication
		if err := utils.FromRecord(record, &application); err != nil {
			return nil, fmt.Errorf("failed to decode application %s: %w", key, err)
		}
		application.ID = key

		if filter.PolicyID != "" && application.PolicyID != filter.PolicyID {
			continue
		}
		if filter.InspectorID != "" && (application.InspectorID == nil || *application.InspectorID != filter.InspectorID) {
			continue
		}

		applications[key] = application
	}
	return applications, nil
}
