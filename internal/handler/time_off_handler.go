package handler

import (
	"staff-scheduler/internal/model"
	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type TimeOffHandler struct {
	uc *usecase.TimeOffUsecase
}

func NewTimeOffHandler(uc *usecase.TimeOffUsecase) *TimeOffHandler {
	return &TimeOffHandler{uc: uc}
}

type TimeOffRequest struct {
	Type      string `json:"type" validate:"required,oneof=vacation personal sick"`
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date" validate:"required,date"`
	Duration  string `json:"duration" validate:"omitempty,oneof=full half_am half_pm"`
	Reason    string `json:"reason" validate:"max=500"`
}

type ReviewRequest struct {
	Note string `json:"note" validate:"max=500"`
}

func (h *TimeOffHandler) Submit(c *fiber.Ctx) error {
	var req TimeOffRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	request, err := h.uc.Submit(currentUserID(c), usecase.TimeOffInput{
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Duration:  req.Duration,
		Reason:    req.Reason,
	})
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Time off request submitted", request)
}

func (h *TimeOffHandler) Mine(c *fiber.Ctx) error {
	list, err := h.uc.Mine(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *TimeOffHandler) GetAll(c *fiber.Ctx) error {
	status := c.Query("status")
	switch status {
	case "", model.StatusPending, model.StatusApproved, model.StatusRejected, model.StatusCancelled:
	default:
		return badRequest(c, "unknown status filter")
	}
	list, err := h.uc.List(status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *TimeOffHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	req, err := h.uc.Get(id, viewer(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": req})
}

func (h *TimeOffHandler) Cancel(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	req, err := h.uc.Cancel(currentUserID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Time off request cancelled", req)
}

func (h *TimeOffHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, true)
}

func (h *TimeOffHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, false)
}

func (h *TimeOffHandler) review(c *fiber.Ctx, approve bool) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req ReviewRequest
	if len(c.Body()) > 0 {
		if err := bind(c, &req); err != nil {
			return rejectRequest(c, err)
		}
	}
	out, err := h.uc.Review(c.UserContext(), id, currentUserID(c), approve, req.Note)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Time off request "+out.Request.Status, out)
}
