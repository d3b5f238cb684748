package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupMessageRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewMessageHandler(s.Messages)

	api := app.Group("/api/messages", s.authRequired())
	api.Post("/", hdl.Send)
	api.Get("/inbox", hdl.Inbox)
	api.Get("/sent", hdl.Sent)
	api.Get("/:id", hdl.GetByID)
	api.Delete("/:id", hdl.Delete)
}
