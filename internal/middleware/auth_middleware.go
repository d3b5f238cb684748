package middleware

import (
	"strings"

	"staff-scheduler/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// Auth accepts the session cookie or an "Authorization: Bearer" header and
// stores the caller in the context for handlers.
func Auth(tokens *auth.TokenService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Token from the cookie, then the Authorization header
		tokenString := c.Cookies(cookieName)
		if tokenString == "" {
			authHeader := c.Get(fiber.HeaderAuthorization)
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		// 2. Parse and validate
		claims, err := tokens.Parse(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		// 3. Caller into Locals
		c.Locals("user_id", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
