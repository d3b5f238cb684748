package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupScheduleRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewScheduleHandler(s.Schedules)

	// Employees see published schedules only
	api := app.Group("/api/schedules", s.authRequired())
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	admin := app.Group("/api/admin/schedules", s.authRequired(), adminOnly())
	admin.Get("/", hdl.GetAll)
	admin.Post("/", hdl.Create)
	admin.Post("/preview", hdl.Preview)
	admin.Post("/generate", hdl.Generate)
	admin.Get("/:id", hdl.GetByID)
	admin.Put("/:id", hdl.Update)
	admin.Post("/:id/publish", hdl.Publish)
	admin.Post("/:id/reset", hdl.ResetShifts)
	admin.Delete("/:id", hdl.Delete)
}
