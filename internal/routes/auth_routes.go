package routes

import (
	"time"

	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func SetupAuthRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewAuthHandler(s.Auth, s.Config.SessionCookie, s.Config.SecureCookie)

	loginLimiter := limiter.New(limiter.Config{
		Max:        s.Config.LoginRateLimit,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many login attempts, try again later"})
		},
	})

	api := app.Group("/api/auth")
	api.Post("/login", loginLimiter, hdl.Login)
	api.Post("/logout", hdl.Logout)

	me := app.Group("/api/me", s.authRequired())
	me.Get("/", hdl.Me)
	me.Put("/password", hdl.ChangePassword)
}
