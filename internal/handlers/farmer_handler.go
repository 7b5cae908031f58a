package handlers

import (
	"net/http"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type FarmerHandler struct {
	farmerService *services.FarmerService
}

func NewFarmerHandler(farmerService *services.FarmerService) *FarmerHandler {
	return &FarmerHandler{farmerService: farmerService}
}

func (h *FarmerHandler) Register(router fiber.Router) {
	farmerGroup := router.Group("/farmers")
	farmerGroup.Post("/", h.CreateFarmer)
	farmerGroup.Get("/", h.ListFarmers)
	farmerGroup.Get("/:id", h.GetFarmerDetail)
	farmerGroup.Patch("/:id", h.UpdateFarmer)
}

func (h *FarmerHandler) CreateFarmer(c fiber.Ctx) error {
	var req models.CreateFarmerRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	key, err := h.farmerService.CreateFarmer(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err, "create farmer")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(map[string]any{
		"farmer_id": key,
	}))
}

func (h *FarmerHandler) GetFarmerDetail(c fiber.Ctx) error {
	farmer, err := h.farmerService.GetFarmer(c.Context(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "retrieve farmer")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(farmer))
}

// ListFarmers returns the farmer roster, optionally narrowed by region. An
// email query resolves a single farmer instead.
func (h *FarmerHandler) ListFarmers(c fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		farmer, err := h.farmerService.GetFarmerByEmail(c.Context(), email)
		if err != nil {
			return respondServiceError(c, err, "retrieve farmer by email")
		}
		return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
			"farmers": map[string]any{farmer.ID: farmer},
			"count":   1,
		}))
	}

	farmers, err := h.farmerService.ListFarmers(c.Context(), c.Query("region"))
	if err != nil {
		return respondServiceError(c, err, "retrieve farmers")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"farmers": farmers,
		"count":   len(farmers),
	}))
}

func (h *FarmerHandler) UpdateFarmer(c fiber.Ctx) error {
	var req models.UpdateFarmerRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	farmer, err := h.farmerService.UpdateFarmer(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondServiceError(c, err, "update farmer")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(farmer))
}
