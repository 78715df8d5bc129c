package middleware

import (
	"log"
	"strings"

	"bazar/internal/models"
	"bazar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by AuthRequired and read by the role guards.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthRequired checks for a valid bearer token and stashes the caller's id
// and role in the request context. The role is trusted from the token
// payload and not re-checked against the identity store, so a demoted user's
// existing token keeps its old role until expiry.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access denied: no token provided",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		userID, _ := claims["id"].(string)
		role, _ := claims["role"].(string)
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)

		return c.Next()
	}
}

// OwnerOnly rejects callers whose token does not carry the owner role.
func OwnerOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals(LocalRole).(string); role != models.RoleOwner {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied: owner only",
			})
		}
		return c.Next()
	}
}

// EditorOnly rejects callers who are neither owner nor admin.
func EditorOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if role != models.RoleOwner && role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied: admins only",
			})
		}
		return c.Next()
	}
}
