package handlers

import (
	"net/http"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type ClaimHandler struct {
	claimService *services.ClaimService
}

func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

func (h *ClaimHandler) Register(router fiber.Router) {
	claimGroup := router.Group("/claims")
	claimGroup.Post("/", h.CreateClaim)
	claimGroup.Get("/", h.ListClaims)
	claimGroup.Get("/:id", h.GetClaimDetail)
	claimGroup.Patch("/:id", h.UpdateClaim)
}

// CreateClaim files a new damage claim.
func (h *ClaimHandler) CreateClaim(c fiber.Ctx) error {
	var req models.CreateClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	key, err := h.claimService.CreateClaim(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err, "create claim")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(map[string]any{
		"claim_id": key,
		"status":   models.ClaimPending,
	}))
}

// UpdateClaim applies a partial update (status, inspector, report, notes).
func (h *ClaimHandler) UpdateClaim(c fiber.Ctx) error {
	claimID := c.Params("id")
	if claimID == "" {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("MISSING_ID", "Claim ID is required"))
	}

	var req models.UpdateClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	claim, err := h.claimService.UpdateClaim(c.Context(), claimID, req)
	if err != nil {
		return respondServiceError(c, err, "update claim")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"claim_id": claimID,
		"claim":    claim,
	}))
}

// GetClaimDetail retrieves one claim by key.
func (h *ClaimHandler) GetClaimDetail(c fiber.Ctx) error {
	claimID := c.Params("id")

	claim, err := h.claimService.GetClaim(c.Context(), claimID)
	if err != nil {
		return respondServiceError(c, err, "retrieve claim")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claim))
}

// ListClaims applies the optional farmer/status/inspector filters.
func (h *ClaimHandler) ListClaims(c fiber.Ctx) error {
	filter := models.ClaimFilter{
		FarmerID:    c.Query("farmer_id"),
		Status:      models.ClaimStatus(c.Query("status")),
		InspectorID: c.Query("inspector_id"),
	}

	claims, err := h.claimService.ListClaims(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err, "retrieve claims")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"claims": claims,
		"count":  len(claims),
	}))
}
