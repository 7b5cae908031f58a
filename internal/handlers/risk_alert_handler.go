package handlers

import (
	"net/http"
	"strconv"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type RiskAlertHandler struct {
	alertService *services.RiskAlertService
}

func NewRiskAlertHandler(alertService *services.RiskAlertService) *RiskAlertHandler {
	return &RiskAlertHandler{alertService: alertService}
}

func (h *RiskAlertHandler) Register(router fiber.Router) {
	alertGroup := router.Group("/risk-alerts")
	alertGroup.Post("/", h.CreateAlert)
	alertGroup.Get("/", h.ListAlerts)
	alertGroup.Patch("/read-all", h.MarkAllRead)
	alertGroup.Patch("/:id/read", h.MarkRead)
}

// CreateAlert is the ingestion endpoint for external hazard feeds.
func (h *RiskAlertHandler) CreateAlert(c fiber.Ctx) error {
	var req models.CreateRiskAlertRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	key, err := h.alertService.CreateAlert(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err, "create risk alert")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(map[string]any{
		"alert_id": key,
	}))
}

func (h *RiskAlertHandler) ListAlerts(c fiber.Ctx) error {
	filter := models.AlertFilter{FarmerID: c.Query("farmer_id")}
	if filter.FarmerID == "" {
		filter.FarmerID = requestUserID(c)
	}
	if isReadParam := c.Query("is_read"); isReadParam != "" {
		isRead, err := strconv.ParseBool(isReadParam)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(
				utils.CreateErrorResponse("INVALID_QUERY", "is_read must be a boolean"))
		}
		filter.IsRead = &isRead
	}

	alerts, err := h.alertService.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err, "retrieve risk alerts")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"alerts": alerts,
		"count":  len(alerts),
	}))
}

func (h *RiskAlertHandler) MarkRead(c fiber.Ctx) error {
	alertID := c.Params("id")

	if err := h.alertService.MarkRead(c.Context(), alertID); err != nil {
		return respondServiceError(c, err, "mark risk alert read")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"alert_id": alertID,
		"is_read":  true,
	}))
}

func (h *RiskAlertHandler) MarkAllRead(c fiber.Ctx) error {
	farmerID := requestUserID(c)
	if farmerID == "" {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("UNAUTHORIZED", "User ID is required"))
	}

	updated, err := h.alertService.MarkAllRead(c.Context(), farmerID)
	if err != nil {
		return respondServiceError(c, err, "mark risk alerts read")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"farmer_id": farmerID,
		"updated":   updated,
	}))
}
