package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ivanausecha/tidytask-backend/internal/auth/service"
)

// RequireAuth gates protected routes. It extracts the Bearer token, verifies
// it, and stores the authenticated identity in the request locals. It never
// mutates state: every request is re-verified from scratch.
func RequireAuth(tokenService service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token provided"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token provided"})
		}

		claims, err := tokenService.Verify(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}

// AuthUserID returns the identity set by RequireAuth. Handlers that call this
// without the middleware in their chain are a defect.
func AuthUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
