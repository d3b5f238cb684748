package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupShiftRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewShiftHandler(s.Shifts)

	app.Get("/api/shifts/mine", s.authRequired(), hdl.Mine)

	api := app.Group("/api/admin/shifts", s.authRequired(), adminOnly())
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
