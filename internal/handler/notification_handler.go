package handler

import (
	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	uc *usecase.NotificationUsecase
}

func NewNotificationHandler(uc *usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) GetMine(c *fiber.Ctx) error {
	list, unread, err := h.uc.List(currentUserID(c), queryBool(c, "unread"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": list, "unread": unread})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.MarkRead(currentUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	n, err := h.uc.MarkAllRead(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Notifications marked as read", fiber.Map{"updated": n})
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(currentUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification deleted"})
}
