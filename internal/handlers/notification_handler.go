package handlers

import (
	"net/http"
	"strconv"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) Register(router fiber.Router) {
	notificationGroup := router.Group("/notifications")
	notificationGroup.Get("/", h.ListNotifications)
	notificationGroup.Patch("/read-all", h.MarkAllRead)
	notificationGroup.Patch("/:id/read", h.MarkRead)
}

// ListNotifications filters by the caller's UID unless user_id is supplied.
func (h *NotificationHandler) ListNotifications(c fiber.Ctx) error {
	filter := models.NotificationFilter{UserID: c.Query("user_id")}
	if filter.UserID == "" {
		filter.UserID = requestUserID(c)
	}
	if isReadParam := c.Query("is_read"); isReadParam != "" {
		isRead, err := strconv.ParseBool(isReadParam)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(
				utils.CreateErrorResponse("INVALID_QUERY", "is_read must be a boolean"))
		}
		filter.IsRead = &isRead
	}

	notifications, err := h.notificationService.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err, "retrieve notifications")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"notifications": notifications,
		"count":         len(notifications),
	}))
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	notificationID := c.Params("id")

	if err := h.notificationService.MarkRead(c.Context(), notificationID); err != nil {
		return respondServiceError(c, err, "mark notification read")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"notification_id": notificationID,
		"is_read":         true,
	}))
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID := requestUserID(c)
	if userID == "" {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("UNAUTHORIZED", "User ID is required"))
	}

	updated, err := h.notificationService.MarkAllRead(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "mark notifications read")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"user_id": userID,
		"updated": updated,
	}))
}
