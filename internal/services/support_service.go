package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
)

type SupportService struct {
	supportRepo *repository.SupportRepository
	notifier    *NotificationService
}

func NewSupportService(supportRepo *repository.SupportRepository, notifier *NotificationService) *SupportService {
	return &SupportService{supportRepo: supportRepo, notifier: notifier}
}

func (s *SupportService) CreateMessage(ctx context.Context, req models.CreateSupportMessageRequest) (string, error) {
	required := []struct {
		name  string
		value string
	}{
		{"user_id", req.UserID},
		{"subject", req.Subject},
		{"message", req.Message},
	}
	for _, field := range required {
		if field.value == "" {
			return "", fmt.Errorf("%w: missing required field %q", models.ErrValidation, field.name)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	message := &models.SupportMessage{
		UserID:    req.UserID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.SupportOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.supportRepo.Create(ctx, message)
}

func (s *SupportService) GetMessage(ctx context.Context, id string) (*models.SupportMessage, error) {
	return s.supportRepo.GetByID(ctx, id)
}

func (s *SupportService) ListMessages(ctx context.Context, userID string, status models.SupportStatus) (map[string]models.SupportMessage, error) {
	return s.supportRepo.GetAll(ctx, userID, status)
}

// Reply answers a support message and notifies the filing user.
func (s *SupportService) Reply(ctx context.Context, id string, req models.ReplySupportMessageRequest) (*models.SupportMessage, error) {
	if req.Reply == "" {
		return nil, fmt.Errorf("%w: missing required field %q", models.ErrValidation, "reply")
	}

	current, err := s.supportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := models.SupportAnswered
	if req.Close {
		status = models.SupportClosed
	}

	updates := map[string]any{
		"reply":      req.Reply,
		"status":     string(status),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.supportRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	_, err = s.notifier.Emit(ctx, current.UserID, "Support Reply",
		fmt.Sprintf("Your support request %q has a reply.", current.Subject),
		models.RelatedSystem, id)
	if err != nil {
		slog.Error("Failed to emit support reply notification", "message_id", id, "error", err)
	}

	return s.supportRepo.GetByID(ctx, id)
}
