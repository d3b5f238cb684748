package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewUserHandler(s.UserAdmin)

	api := app.Group("/api/admin/users", s.authRequired(), adminOnly())
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Post("/:id/deactivate", hdl.Deactivate)
	api.Post("/:id/reactivate", hdl.Reactivate)
}
