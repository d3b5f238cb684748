package handler

import (
	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ClosedDayHandler struct {
	repo repository.ClosedDayRepository
}

func NewClosedDayHandler(repo repository.ClosedDayRepository) *ClosedDayHandler {
	return &ClosedDayHandler{repo: repo}
}

type ClosedDayRequest struct {
	Date        string `json:"date" validate:"required,date"`
	Description string `json:"description" validate:"max=255"`
}

func (h *ClosedDayHandler) GetAll(c *fiber.Ctx) error {
	var (
		data []model.ClosedDay
		err  error
	)
	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		data, err = h.repo.GetInRange(from, to)
	} else {
		data, err = h.repo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load closed days"})
	}
	return c.JSON(fiber.Map{"data": data})
}

func (h *ClosedDayHandler) Create(c *fiber.Ctx) error {
	var req ClosedDayRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}

	exists, err := h.repo.IsClosed(req.Date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check date"})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "date is already closed"})
	}

	day := model.ClosedDay{Date: req.Date, Description: req.Description}
	if err := h.repo.Create(&day); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save closed day"})
	}
	return created(c, "Closed day added", day)
}

func (h *ClosedDayHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req ClosedDayRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}

	day, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "closed day not found"})
	}
	if req.Date != day.Date {
		if exists, _ := h.repo.IsClosed(req.Date); exists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "date is already closed"})
		}
	}

	day.Date = req.Date
	day.Description = req.Description
	if err := h.repo.Update(day); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update closed day"})
	}
	return ok(c, "Closed day updated", day)
}

func (h *ClosedDayHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete closed day"})
	}
	return c.JSON(fiber.Map{"message": "Closed day deleted"})
}
