package handler

import (
	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ShiftHandler struct {
	uc *usecase.ShiftUsecase
}

func NewShiftHandler(uc *usecase.ShiftUsecase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

type ShiftRequest struct {
	ScheduleID uint   `json:"schedule_id" validate:"required"`
	UserID     uint   `json:"user_id" validate:"required"`
	Date       string `json:"date" validate:"required,date"`
	StartTime  string `json:"start_time" validate:"required,slot"`
	EndTime    string `json:"end_time" validate:"required,slot"`
	Type       string `json:"type" validate:"omitempty,shifttype"`
	Notes      string `json:"notes" validate:"max=255"`
	Area       string `json:"area" validate:"max=80"`
}

type ShiftUpdateRequest struct {
	UserID    uint   `json:"user_id"`
	Date      string `json:"date" validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,slot"`
	EndTime   string `json:"end_time" validate:"required,slot"`
	Type      string `json:"type" validate:"omitempty,shifttype"`
	Notes     string `json:"notes" validate:"max=255"`
	Area      string `json:"area" validate:"max=80"`
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var req ShiftRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	shift, err := h.uc.Create(usecase.ShiftInput{
		ScheduleID: req.ScheduleID,
		UserID:     req.UserID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Type:       req.Type,
		Notes:      req.Notes,
		Area:       req.Area,
	})
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Shift created", shift)
}

func (h *ShiftHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	shift, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": shift})
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req ShiftUpdateRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	shift, err := h.uc.Update(id, usecase.ShiftInput{
		UserID:    req.UserID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Notes:     req.Notes,
		Area:      req.Area,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Shift updated", shift)
}

func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shift deleted"})
}

// Mine is the employee calendar: ?from=YYYY-MM-DD&to=YYYY-MM-DD, published
// schedules only.
func (h *ShiftHandler) Mine(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		return badRequest(c, "from and to are required")
	}
	days, err := h.uc.Mine(currentUserID(c), from, to)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": days})
}
