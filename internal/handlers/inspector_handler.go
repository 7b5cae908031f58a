package handlers

import (
	"net/http"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type InspectorHandler struct {
	inspectorService *services.InspectorService
}

func NewInspectorHandler(inspectorService *services.InspectorService) *InspectorHandler {
	return &InspectorHandler{inspectorService: inspectorService}
}

func (h *InspectorHandler) Register(router fiber.Router) {
	inspectorGroup := router.Group("/inspectors")
	inspectorGroup.Post("/", h.CreateInspector)
	inspectorGroup.Get("/", h.ListInspectors)
	inspectorGroup.Get("/:id", h.GetInspectorDetail)
	inspectorGroup.Patch("/:id", h.UpdateInspector)
}

func (h *InspectorHandler) CreateInspector(c fiber.Ctx) error {
	var req models.CreateInspectorRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	key, err := h.inspectorService.CreateInspector(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err, "create inspector")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(map[string]any{
		"inspector_id": key,
	}))
}

func (h *InspectorHandler) GetInspectorDetail(c fiber.Ctx) error {
	inspector, err := h.inspectorService.GetInspector(c.Context(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "retrieve inspector")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(inspector))
}

func (h *InspectorHandler) ListInspectors(c fiber.Ctx) error {
	activeOnly := c.Query("active") == "true"

	inspectors, err := h.inspectorService.ListInspectors(c.Context(), c.Query("region"), activeOnly)
	if err != nil {
		return respondServiceError(c, err, "retrieve inspectors")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"inspectors": inspectors,
		"count":      len(inspectors),
	}))
}

func (h *InspectorHandler) UpdateInspector(c fiber.Ctx) error {
	var req models.UpdateInspectorRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	inspector, err := h.inspectorService.UpdateInspector(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondServiceError(c, err, "update inspector")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(inspector))
}
