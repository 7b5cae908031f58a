package handlers

import (
	"errors"
	"net/http"

	"insurance-service/internal/auth"
	"insurance-service/internal/models"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	identity *auth.IdentityService
}

func NewAuthHandler(identity *auth.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Register wires the public auth routes; /me requires the auth middleware.
func (h *AuthHandler) Register(public fiber.Router, protected fiber.Router) {
	authGroup := public.Group("/auth")
	authGroup.Post("/login", h.Login)
	authGroup.Post("/register", h.RegisterUser)

	protected.Get("/auth/me", h.Me)
	protected.Get("/auth/users", h.LookupUser)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.SignInRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_FAILED", "email and password are required"))
	}

	result, err := h.identity.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.Status(http.StatusUnauthorized).JSON(
				utils.CreateErrorResponse("SIGN_IN_FAILED", "invalid credentials"))
		}
		return respondServiceError(c, err, "sign in")
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(result))
}

func (h *AuthHandler) RegisterUser(c fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondInvalidBody(c)
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_FAILED", "email and password are required"))
	}
	if _, err := utils.ValidateEmail(req.Email); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_FAILED", "email format incorrect"))
	}

	principal, err := h.identity.CreateUser(c.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return respondServiceError(c, err, "register user")
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(principal))
}

// LookupUser resolves a registered user by email.
func (h *AuthHandler) LookupUser(c fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_FAILED", "email query parameter is required"))
	}

	principal, err := h.identity.GetUserByEmail(c.Context(), email)
	if err != nil {
		return respondServiceError(c, err, "look up user")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(principal))
}

// Me returns the identity provider's view of the authenticated caller.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	userID := requestUserID(c)
	if userID == "" {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("UNAUTHORIZED", "User ID is required"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"user_id": userID,
	}))
}
