package handlers

import (
	"net/http"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type SupportHandler struct {
	supportService *services.SupportService
}

func NewSupportHandler(supportService *services.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

func (h *SupportHandler) Register(router fiber.Router) {
	supportGroup := router.Group("/support")
	supportGroup.Post("/", h.CreateMessage)
	supportGroup.Get("/", h.ListMessages)
	supportGroup.Get("/:id", h.GetMessageDetail)
	supportGroup.Post("/:id/reply", h.ReplyMessage)
}

func (h *SupportHandler) CreateMessage(c fiber.Ctx) error {
	var req models.CreateSupportMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}
	if req.UserID == "" {
		req.UserID = requestUserID(c)
	}

	key, err := h.supportService.CreateMessage(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err, "create support message")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(map[string]any{
		"message_id": key,
		"status":     models.SupportOpen,
	}))
}

func (h *SupportHandler) GetMessageDetail(c fiber.Ctx) error {
	message, err := h.supportService.GetMessage(c.Context(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "retrieve support message")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(message))
}

func (h *SupportHandler) ListMessages(c fiber.Ctx) error {
	messages, err := h.supportService.ListMessages(c.Context(),
		c.Query("user_id"), models.SupportStatus(c.Query("status")))
	if err != nil {
		return respondServiceError(c, err, "retrieve support messages")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"messages": messages,
		"count":    len(messages),
	}))
}

func (h *SupportHandler) ReplyMessage(c fiber.Ctx) error {
	var req models.ReplySupportMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	message, err := h.supportService.Reply(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondServiceError(c, err, "reply to support message")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(message))
}
