package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
)

var applicationStatusMessages = map[models.ApplicationStatus]struct {
	Title   string
	Message string
}{
	models.ApplicationPending:  {"Application Pending", "Your application %s is pending review."},
	models.ApplicationApproved: {"Application Approved", "Your application %s has been approved."},
	models.ApplicationRejected: {"Application Rejected", "Your application %s has been rejected."},
}

type ApplicationService struct {
	applicationRepo *repository.ApplicationRepository
	policyRepo      *repository.PolicyRepository
	farmerRepo      *repository.FarmerRepository
	notifier        *NotificationService

	// notifyTransitions turns status-change fan-out on for applications.
	// Off by default: unlike claims, application transitions historically
	// emitted nothing.
	notifyTransitions bool
}

func NewApplicationService(
	applicationRepo *repository.ApplicationRepository,
	policyRepo *repository.PolicyRepository,
	farmerRepo *repository.FarmerRepository,
	notifier *NotificationService,
	notifyTransitions bool,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo:   applicationRepo,
		policyRepo:        policyRepo,
		farmerRepo:        farmerRepo,
		notifier:          notifier,
		notifyTransitions: notifyTransitions,
	}
}

// CreateApplication validates the payload and persists a pending application.
func (s *ApplicationService) CreateApplication(ctx context.Context, req models.CreateApplicationRequest) (string, error) {
	required := []struct {
		name  string
		value string
	}{
		{"policy_id", req.PolicyID},
		{"farmer_id", req.FarmerID},
		{"application_type", string(req.ApplicationType)},
	}
	for _, field := range required {
		if field.value == "" {
			return "", fmt.Errorf("%w: missing required field %q", models.ErrValidation, field.name)
		}
	}
	if !req.ApplicationType.IsValid() {
		return "", fmt.Errorf("%w: invalid application_type %q", models.ErrValidation, req.ApplicationType)
	}

	if _, err := s.policyRepo.GetByID(ctx, req.PolicyID); err != nil {
		return "", fmt.Errorf("referenced policy: %w", err)
	}
	if _, err := s.farmerRepo.GetByID(ctx, req.FarmerID); err != nil {
		return "", fmt.Errorf("referenced farmer: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	application := &models.InsuranceApplication{
		PolicyID:        req.PolicyID,
		FarmerID:        req.FarmerID,
		ApplicationType: req.ApplicationType,
		ClaimAmount:     req.ClaimAmount,
		Notes:           req.Notes,
		Status:          models.ApplicationPending,
		AppliedAt:       now,
		UpdatedAt:       now,
	}

	return s.applicationRepo.Create(ctx, application)
}

// UpdateApplication merges a partial update. An invalid status is rejected
// explicitly and the stored record is left untouched. Inspector assignment is
// caller-supplied; by convention it accompanies an approved status, which is
// not independently enforced here.
func (s *ApplicationService) UpdateApplication(ctx context.Context, id string, req models.UpdateApplicationRequest) (*models.InsuranceApplication, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing required field %q", models.ErrValidation, "id")
	}

	current, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}

	statusChanged := false
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: invalid application status %q", models.ErrValidation, *req.Status)
		}
		updates["status"] = string(*req.Status)
		statusChanged = *req.Status != current.Status
	}
	if req.InspectorID != nil {
		updates["inspector_id"] = *req.InspectorID
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := s.applicationRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	if s.notifyTransitions && statusChanged {
		entry := applicationStatusMessages[*req.Status]
		_, err := s.notifier.Emit(ctx, current.FarmerID, entry.Title,
			fmt.Sprintf(entry.Message, id), models.RelatedPolicy, current.PolicyID)
		if err != nil {
			slog.Error("Failed to emit application notification", "application_id", id, "error", err)
		}
	}

	return s.applicationRepo.GetByID(ctx, id)
}

// GetApplication retrieves an application by key.
func (s *ApplicationService) GetApplication(ctx context.Context, id string) (*models.InsuranceApplication, error) {
	return s.applicationRepo.GetByID(ctx, id)
}

// ListApplications supports policy and inspector filters independently.
func (s *ApplicationService) ListApplications(ctx context.Context, filter models.ApplicationFilter) (map[string]models.InsuranceApplication, error) {
	return s.applicationRepo.GetAll(ctx, filter)
}
