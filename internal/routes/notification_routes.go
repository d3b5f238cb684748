package routes

import (
	"staff-scheduler/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App, s *Services) {
	hdl := handler.NewNotificationHandler(s.Notifications)

	api := app.Group("/api/notifications", s.authRequired())
	api.Get("/", hdl.GetMine)
	api.Post("/read-all", hdl.MarkAllRead)
	api.Post("/:id/read", hdl.MarkRead)
	api.Delete("/:id", hdl.Delete)
}
