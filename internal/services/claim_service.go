package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
)

// claimStatusMessages is the fixed status→message table for farmer
// notifications on claim status transitions.
var claimStatusMessages = map[models.ClaimStatus]struct {
	Title   string
	Message string
}{
	models.ClaimPending:     {"Claim Pending", "Your claim %s is pending review."},
	models.ClaimUnderReview: {"Claim Under Review", "Your claim %s is now under review."},
	models.ClaimApproved:    {"Claim Approved", "Your claim %s has been approved."},
	models.ClaimRejected:    {"Claim Rejected", "Your claim %s has been rejected."},
}

type ClaimService struct {
	claimRepo   *repository.ClaimRepository
	policyRepo  *repository.PolicyRepository
	landRepo    *repository.LandRepository
	farmerRepo  *repository.FarmerRepository
	notifier    *NotificationService
	adminUserID string
}

func NewClaimService(
	claimRepo *repository.ClaimRepository,
	policyRepo *repository.PolicyRepository,
	landRepo *repository.LandRepository,
	farmerRepo *repository.FarmerRepository,
	notifier *NotificationService,
	adminUserID string,
) *ClaimService {
	return &ClaimService{
		claimRepo:   claimRepo,
		policyRepo:  policyRepo,
		landRepo:    landRepo,
		farmerRepo:  farmerRepo,
		notifier:    notifier,
		adminUserID: adminUserID,
	}
}

// CreateClaim validates the payload, persists a pending claim and fans out
// the claim-filed notifications to the farmer and the admin recipient.
// Record write and fan-out are not transactionally linked.
func (s *ClaimService) CreateClaim(ctx context.Context, req models.CreateClaimRequest) (string, error) {
	required := []struct {
		name  string
		value string
	}{
		{"policy_id", req.PolicyID},
		{"land_id", req.LandID},
		{"farmer_id", req.FarmerID},
		{"damage_type", string(req.DamageType)},
		{"damage_date", req.DamageDate},
		{"description", req.Description},
	}
	for _, field := range required {
		if field.value == "" {
			return "", fmt.Errorf("%w: missing required field %q", models.ErrValidation, field.name)
		}
	}
	if !req.DamageType.IsValid() {
		return "", fmt.Errorf("%w: invalid damage_type %q", models.ErrValidation, req.DamageType)
	}

	// Reference checks are read-then-write, not atomic against concurrent
	// deletes.
	if _, err := s.policyRepo.GetByID(ctx, req.PolicyID); err != nil {
		return "", fmt.Errorf("referenced policy: %w", err)
	}
	if _, err := s.landRepo.GetByID(ctx, req.LandID); err != nil {
		return "", fmt.Errorf("referenced land: %w", err)
	}
	if _, err := s.farmerRepo.GetByID(ctx, req.FarmerID); err != nil {
		return "", fmt.Errorf("referenced farmer: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	claim := &models.Claim{
		PolicyID:      req.PolicyID,
		LandID:        req.LandID,
		FarmerID:      req.FarmerID,
		DamageType:    req.DamageType,
		DamageDate:    req.DamageDate,
		Description:   req.Description,
		EvidenceFiles: req.EvidenceFiles,
		WeatherDataID: req.WeatherDataID,
		Status:        models.ClaimPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	key, err := s.claimRepo.Create(ctx, claim)
	if err != nil {
		return "", err
	}

	s.emit(ctx, req.FarmerID, "Claim Filed",
		fmt.Sprintf("Your claim %s has been filed and is pending review.", key),
		models.RelatedClaim, key)
	s.emit(ctx, s.adminUserID, "New Claim Filed",
		fmt.Sprintf("Farmer %s filed a new claim.", req.FarmerID),
		models.RelatedClaim, key)

	return key, nil
}

// UpdateClaim merges the recognized fields of a partial update into the
// stored claim and derives the notification fan-out from what changed.
// Unknown status values are rejected outright.
func (s *ClaimService) UpdateClaim(ctx context.Context, id string, req models.UpdateClaimRequest) (*models.Claim, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing required field %q", models.ErrValidation, "id")
	}

	current, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}

	statusChanged := false
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: invalid claim status %q", models.ErrValidation, *req.Status)
		}
		updates["status"] = string(*req.Status)
		statusChanged = *req.Status != current.Status
	}
	if req.InspectionReportID != nil {
		updates["inspection_report_id"] = *req.InspectionReportID
	}
	if req.InspectorID != nil {
		updates["inspector_id"] = *req.InspectorID
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := s.claimRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	// Fan-out happens after the record write; a failed emission leaves the
	// updated record without its notification (no compensating action).
	if statusChanged {
		entry := claimStatusMessages[*req.Status]
		s.emit(ctx, current.FarmerID, entry.Title, fmt.Sprintf(entry.Message, id), models.RelatedClaim, id)
	}
	if req.InspectionReportID != nil {
		// Emitted whether or not the value changed.
		s.emit(ctx, current.FarmerID, "Inspection Report Available",
			fmt.Sprintf("An inspection report was attached to your claim %s.", id),
			models.RelatedClaim, id)
	}
	if req.InspectorID != nil {
		s.emit(ctx, *req.InspectorID, "New Inspection Assignment",
			fmt.Sprintf("You have been assigned to inspect claim %s.", id),
			models.RelatedClaim, id)
		s.emit(ctx, current.FarmerID, "Inspector Assigned",
			fmt.Sprintf("An inspector has been assigned to your claim %s.", id),
			models.RelatedClaim, id)
	}

	return s.claimRepo.GetByID(ctx, id)
}

// GetClaim retrieves a claim by key.
func (s *ClaimService) GetClaim(ctx context.Context, id string) (*models.Claim, error) {
	return s.claimRepo.GetByID(ctx, id)
}

// ListClaims applies the provided filters with AND semantics.
func (s *ClaimService) ListClaims(ctx context.Context, filter models.ClaimFilter) (map[string]models.Claim, error) {
	return s.claimRepo.GetAll(ctx, filter)
}

func (s *ClaimService) emit(ctx context.Context, userID, title, message string, relatedType models.RelatedEntityType, relatedID string) {
	if _, err := s.notifier.Emit(ctx, userID, title, message, relatedType, relatedID); err != nil {
		slog.Error("Failed to emit claim notification", "user_id", userID, "title", title, "error", err)
	}
}
