package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"insurance-service/internal/models"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

// respondServiceError maps service errors onto the API envelope: validation
// failures are 400, missing records 404, everything else a generic 500 with
// the underlying error logged, never leaked.
func respondServiceError(c fiber.Ctx, err error, operation string) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
	case errors.Is(err, models.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", err.Error()))
	default:
		slog.Error("Request failed", "operation", operation, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_ERROR", "Failed to "+operation))
	}
}

func respondInvalidBody(c fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(
		utils.CreateErrorResponse("INVALID_BODY", "Invalid request payload"))
}
