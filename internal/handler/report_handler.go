package handler

import (
	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	schedules *usecase.ScheduleUsecase
}

func NewReportHandler(schedules *usecase.ScheduleUsecase) *ReportHandler {
	return &ReportHandler{schedules: schedules}
}

// GetScheduleHours lists resolved work hours and absence days per employee.
func (h *ReportHandler) GetScheduleHours(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	report, err := h.schedules.HoursReport(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": report})
}
