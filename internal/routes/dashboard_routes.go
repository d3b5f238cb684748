package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewDashboardHandler(s.Dashboard)

	api := app.Group("/api/admin/dashboard", s.authRequired(), adminOnly())
	api.Get("/", hdl.GetStats)
}
