package handlers

import (
	"net/http"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type PolicyHandler struct {
	policyService *services.PolicyService
}

func NewPolicyHandler(policyService *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

func (h *PolicyHandler) Register(router fiber.Router) {
	policyGroup := router.Group("/policies")
	policyGroup.Post("/", h.CreatePolicy)
	policyGroup.Get("/", h.ListPolicies)
	policyGroup.Get("/:id", h.GetPolicyDetail)
	policyGroup.Patch("/:id", h.UpdatePolicy)
	policyGroup.Delete("/:id", h.DeletePolicy)
}

func (h *PolicyHandler) CreatePolicy(c fiber.Ctx) error {
	var req models.CreatePolicyRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	key, err := h.policyService.CreatePolicy(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err, "create policy")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(map[string]any{
		"policy_id": key,
	}))
}

func (h *PolicyHandler) GetPolicyDetail(c fiber.Ctx) error {
	policy, err := h.policyService.GetPolicy(c.Context(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "retrieve policy")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) ListPolicies(c fiber.Ctx) error {
	activeOnly := c.Query("active") == "true"

	policies, err := h.policyService.ListPolicies(c.Context(), c.Query("crop_type"), activeOnly)
	if err != nil {
		return respondServiceError(c, err, "retrieve policies")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"policies": policies,
		"count":    len(policies),
	}))
}

func (h *PolicyHandler) UpdatePolicy(c fiber.Ctx) error {
	var req models.UpdatePolicyRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	policy, err := h.policyService.UpdatePolicy(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondServiceError(c, err, "update policy")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) DeletePolicy(c fiber.Ctx) error {
	policyID := c.Params("id")

	if err := h.policyService.DeletePolicy(c.Context(), policyID); err != nil {
		return respondServiceError(c, err, "delete policy")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"policy_id": policyID,
		"deleted":   true,
	}))
}
