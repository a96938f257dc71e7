package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dimec-inventory/internal/core/domain"
	"dimec-inventory/internal/core/services"
	"dimec-inventory/internal/pkg/password"
	"dimec-inventory/internal/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var creds domain.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := map[string]string{}
	if strings.TrimSpace(creds.Email) == "" {
		errs["email"] = "Email is required"
	}
	if creds.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	result, err := h.authService.Login(c.Context(), creds)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to log in")
	}

	return response.JSON(c, result)
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		errs["email"] = "Email is required"
	}
	if !password.Validate(input.Password) {
		errs["password"] = "Password must be at least 6 characters"
	}
	if input.Role != "" && !domain.Role(input.Role).Known() {
		errs["role"] = "Role must be one of ADMIN, INVENTORY_CLERK, VIEWER"
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid registration data")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, fiber.Map{
		"userId": user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"role":   user.Role,
	})
}
