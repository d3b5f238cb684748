package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewReportHandler(s.Schedules)

	api := app.Group("/api/admin/reports", s.authRequired(), adminOnly())
	api.Get("/schedules/:id/hours", hdl.GetScheduleHours)
}
