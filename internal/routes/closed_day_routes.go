package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupClosedDayRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewClosedDayHandler(s.ClosedDays)

	api := app.Group("/api/admin/closed-days", s.authRequired(), adminOnly())
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
