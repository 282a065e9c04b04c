package middleware

import (
	"strings"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer JWT and sets user info in context. A
// missing or expired token fails here, before any handler work happens.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		if user.Status == model.UserBlocked {
			return c.Status(401).JSON(fiber.Map{"error": "User account is blocked"})
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("username", user.Username)
		c.Locals("user_roles", user.RoleCodes())

		return c.Next()
	}
}

// RequireRole allows the request through when the caller holds at least one
// of the given role codes. No roles means no access.
func RequireRole(requiredRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, ok := c.Locals("user_roles").([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No roles found"})
		}

		for _, userRole := range roles {
			for _, required := range requiredRoles {
				if userRole == required {
					return c.Next()
				}
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(requiredRoles, ", ") + " roles",
		})
	}
}
