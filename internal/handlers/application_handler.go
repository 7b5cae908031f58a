package handlers

import (
	"net/http"

	"insurance-service/internal/models"
	"insurance-service/internal/services"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) Register(router fiber.Router) {
	applicationGroup := router.Group("/applications")
	applicationGroup.Post("/", h.CreateApplication)
	applicationGroup.Get("/", h.ListApplications)
	applicationGroup.Get("/:id", h.GetApplicationDetail)
	applicationGroup.Patch("/:id", h.UpdateApplication)
}

func (h *ApplicationHandler) CreateApplication(c fiber.Ctx) error {
	var req models.CreateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	key, err := h.applicationService.CreateApplication(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err, "create application")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(map[string]any{
		"application_id": key,
		"status":         models.ApplicationPending,
	}))
}

func (h *ApplicationHandler) UpdateApplication(c fiber.Ctx) error {
	applicationID := c.Params("id")
	if applicationID == "" {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("MISSING_ID", "Application ID is required"))
	}

	var req models.UpdateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}

	application, err := h.applicationService.UpdateApplication(c.Context(), applicationID, req)
	if err != nil {
		return respondServiceError(c, err, "update application")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"application_id": applicationID,
		"application":    application,
	}))
}

func (h *ApplicationHandler) GetApplicationDetail(c fiber.Ctx) error {
	applicationID := c.Params("id")

	application, err := h.applicationService.GetApplication(c.Context(), applicationID)
	if err != nil {
		return respondServiceError(c, err, "retrieve application")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(application))
}

func (h *ApplicationHandler) ListApplications(c fiber.Ctx) error {
	filter := models.ApplicationFilter{
		PolicyID:    c.Query("policy_id"),
		InspectorID: c.Query("inspector_id"),
	}

	applications, err := h.applicationService.ListApplications(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err, "retrieve applications")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"applications": applications,
		"count":        len(applications),
	}))
}
