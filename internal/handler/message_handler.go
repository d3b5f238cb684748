package handler

import (
	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	uc *usecase.MessageUsecase
}

func NewMessageHandler(uc *usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

type MessageRequest struct {
	RecipientID uint   `json:"recipient_id" validate:"required"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Body        string `json:"body" validate:"required,max=10000"`
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var req MessageRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	msg, err := h.uc.Send(currentUserID(c), req.RecipientID, req.Subject, req.Body)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Message sent", msg)
}

func (h *MessageHandler) Inbox(c *fiber.Ctx) error {
	list, unread, err := h.uc.Inbox(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": list, "unread": unread})
}

func (h *MessageHandler) Sent(c *fiber.Ctx) error {
	list, err := h.uc.Sent(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *MessageHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	msg, err := h.uc.Get(currentUserID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": msg})
}

func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(currentUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Message deleted"})
}
