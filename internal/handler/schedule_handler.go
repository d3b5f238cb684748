package handler

import (
	"errors"

	"staff-scheduler/internal/scheduler"
	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

var errMaxHours = errors.New("max_hours_per_employee must be greater than zero")

type ScheduleHandler struct {
	uc *usecase.ScheduleUsecase
}

func NewScheduleHandler(uc *usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

type ScheduleRequest struct {
	Title     string `json:"title" validate:"max=120"`
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date" validate:"required,date"`
}

type ScheduleUpdateRequest struct {
	Title     string `json:"title" validate:"max=120"`
	StartDate string `json:"start_date" validate:"omitempty,date"`
	EndDate   string `json:"end_date" validate:"omitempty,date"`
}

type SettingsRequest struct {
	MinHoursPerEmployee    int   `json:"min_hours_per_employee" validate:"gte=0,lte=168"`
	MaxHoursPerEmployee    int   `json:"max_hours_per_employee" validate:"gte=0,lte=168"`
	StartHour              int   `json:"start_hour" validate:"gte=0,lte=23"`
	EndHour                int   `json:"end_hour" validate:"gt=0,lte=24,gtfield=StartHour"`
	DistributeEvenly       bool  `json:"distribute_evenly"`
	RespectTimeOffRequests *bool `json:"respect_time_off_requests"`
}

type GenerateRequest struct {
	Title       string          `json:"title" validate:"max=120"`
	StartDate   string          `json:"start_date" validate:"required,date"`
	EndDate     string          `json:"end_date" validate:"required,date"`
	EmployeeIDs []uint          `json:"employee_ids" validate:"required,min=1,dive,gt=0"`
	Settings    SettingsRequest `json:"settings"`
}

// toUsecase normalizes the settings before the engine sees them: inverted
// bounds are swapped and time off is respected unless turned off.
func (r GenerateRequest) toUsecase(createdBy uint) (usecase.GenerateRequest, error) {
	respect := true
	if r.Settings.RespectTimeOffRequests != nil {
		respect = *r.Settings.RespectTimeOffRequests
	}
	settings := scheduler.Settings{
		MinHoursPerEmployee:    r.Settings.MinHoursPerEmployee,
		MaxHoursPerEmployee:    r.Settings.MaxHoursPerEmployee,
		StartHour:              r.Settings.StartHour,
		EndHour:                r.Settings.EndHour,
		DistributeEvenly:       r.Settings.DistributeEvenly,
		RespectTimeOffRequests: respect,
	}.Normalize()
	if settings.MaxHoursPerEmployee == 0 {
		return usecase.GenerateRequest{}, errMaxHours
	}

	return usecase.GenerateRequest{
		Title:       r.Title,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		EmployeeIDs: r.EmployeeIDs,
		Settings:    settings,
		CreatedByID: createdBy,
	}, nil
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var req ScheduleRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	sched, err := h.uc.Create(c.UserContext(), usecase.ScheduleInput{
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedByID: currentUserID(c),
	})
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Schedule created", sched)
}

func (h *ScheduleHandler) GetAll(c *fiber.Ctx) error {
	schedules, err := h.uc.List(viewer(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": schedules})
}

// GetByID returns the schedule with its consolidated grid.
func (h *ScheduleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	detail, err := h.uc.Get(id, viewer(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": detail})
}

func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req ScheduleUpdateRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	sched, err := h.uc.Update(c.UserContext(), id, usecase.ScheduleInput{Title: req.Title, StartDate: req.StartDate, EndDate: req.EndDate})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Schedule updated", sched)
}

func (h *ScheduleHandler) Publish(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	sched, err := h.uc.Publish(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Schedule published", sched)
}

func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Schedule deleted"})
}

func (h *ScheduleHandler) ResetShifts(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	deleted, err := h.uc.ResetShifts(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Schedule shifts reset", fiber.Map{"deleted": deleted})
}

func (h *ScheduleHandler) Preview(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	in, err := req.toUsecase(currentUserID(c))
	if err != nil {
		return badRequest(c, err.Error())
	}
	res, err := h.uc.Preview(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, previewMessage(res.Status), res)
}

func (h *ScheduleHandler) Generate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	in, err := req.toUsecase(currentUserID(c))
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.GenerateAndSave(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, previewMessage(out.Status), out)
}

func previewMessage(status scheduler.Status) string {
	if status == scheduler.StatusPartiallyAssigned {
		return "Schedule generated with unmet hours"
	}
	return "Schedule generated"
}
