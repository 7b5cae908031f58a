package handlers

import (
	"net/http"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type LandHandler struct {
	landService *services.LandService
}

func NewLandHandler(landService *services.LandService) *LandHandler {
	return &LandHandler{landService: landService}
}

func (h *LandHandler) Register(router fiber.Router) {
	landGroup := router.Group("/lands")
	landGroup.Post("/", h.CreateLand)
	landGroup.Get("/", h.ListLands)
	landGroup.Get("/:id", h.GetLandDetail)
	landGroup.Patch("/:id", h.UpdateLand)
	landGroup.Delete("/:id", h.DeleteLand)
}

func (h *LandHandler) CreateLand(c fiber.Ctx) error {
	var req models.CreateLandRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	key, err := h.landService.CreateLand(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err, "create land")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(map[string]any{
		"land_id": key,
	}))
}

func (h *LandHandler) GetLandDetail(c fiber.Ctx) error {
	land, err := h.landService.GetLand(c.Context(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "retrieve land")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(land))
}

func (h *LandHandler) ListLands(c fiber.Ctx) error {
	lands, err := h.landService.ListLands(c.Context(), c.Query("farmer_id"))
	if err != nil {
		return respondServiceError(c, err, "retrieve lands")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"lands": lands,
		"count": len(lands),
	}))
}

func (h *LandHandler) UpdateLand(c fiber.Ctx) error {
	var req models.UpdateLandRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	land, err := h.landService.UpdateLand(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondServiceError(c, err, "update land")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(land))
}

func (h *LandHandler) DeleteLand(c fiber.Ctx) error {
	landID := c.Params("id")

	if err := h.landService.DeleteLand(c.Context(), landID); err != nil {
		return respondServiceError(c, err, "delete land")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"land_id": landID,
		"deleted": true,
	}))
}
