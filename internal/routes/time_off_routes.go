package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupTimeOffRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewTimeOffHandler(s.TimeOff)

	api := app.Group("/api/time-off", s.authRequired())
	api.Post("/", hdl.Submit)
	api.Get("/mine", hdl.Mine)
	api.Get("/:id", hdl.GetByID)
	api.Post("/:id/cancel", hdl.Cancel)

	admin := app.Group("/api/admin/time-off", s.authRequired(), adminOnly())
	admin.Get("/", hdl.GetAll)
	admin.Get("/:id", hdl.GetByID)
	admin.Post("/:id/approve", hdl.Approve)
	admin.Post("/:id/reject", hdl.Reject)
}
