package handler

import (
	"time"

	"staff-scheduler/internal/repository"
	"staff-scheduler/internal/scheduler"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// GetStats accepts ?date=YYYY-MM-DD, defaulting to today.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(scheduler.DateLayout)
	} else if _, err := scheduler.ParseDate(date); err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	stats, err := h.repo.GetDashboardStats(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load dashboard"})
	}
	return c.JSON(fiber.Map{"data": stats})
}
