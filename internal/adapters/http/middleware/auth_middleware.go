package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"dimec-inventory/internal/config"
	"dimec-inventory/internal/core/domain"
	"dimec-inventory/internal/pkg/jwt"
	"dimec-inventory/internal/pkg/response"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context. Absence or invalidity yields 401,
// which clients treat as a hard session-invalidation signal.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("name", claims.Name)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if domain.Role(role).In(allowedRoles) {
			return c.Next()
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// StaffOnly allows roles that may mutate inventory data
func StaffOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleClerk)
}

// AnyRole allows every authenticated known role
func AnyRole() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleClerk, domain.RoleViewer)
}
