package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupDocumentRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewDocumentHandler(s.Documents)

	api := app.Group("/api/documents", s.authRequired())
	api.Get("/", hdl.GetAll)
	api.Get("/:id/download", hdl.Download)

	admin := app.Group("/api/admin/documents", s.authRequired(), adminOnly())
	admin.Get("/", hdl.GetAll)
	admin.Post("/", hdl.Upload)
	admin.Delete("/:id", hdl.Delete)
}
