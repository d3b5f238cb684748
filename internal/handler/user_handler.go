package handler

import (
	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type UserRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin employee"`
	Phone    string `json:"phone" validate:"max=30"`
	Position string `json:"position" validate:"max=80"`
	MinHours int    `json:"min_hours" validate:"gte=0,lte=168"`
	MaxHours int    `json:"max_hours" validate:"gte=0,lte=168"`
}

func (r UserRequest) input() usecase.UserInput {
	return usecase.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		Phone:    r.Phone,
		Position: r.Position,
		MinHours: r.MinHours,
		MaxHours: r.MaxHours,
	}
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.uc.List(usecase.UserFilter{
		Role:       c.Query("role"),
		ActiveOnly: queryBool(c, "active"),
		Search:     c.Query("search"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": users})
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	user, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": user})
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req UserRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	if req.Password == "" {
		return badRequest(c, "password is required")
	}
	user, err := h.uc.Register(req.input())
	if err != nil {
		return fail(c, err)
	}
	return created(c, "User created", user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req UserRequest
	if err := bind(c, &req); err != nil {
		return rejectRequest(c, err)
	}
	user, err := h.uc.Update(id, req.input())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "User updated", user)
}

func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *UserHandler) Reactivate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

func (h *UserHandler) setActive(c *fiber.Ctx, active bool) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.SetActive(currentUserID(c), id, active); err != nil {
		return fail(c, err)
	}
	msg := "User deactivated"
	if active {
		msg = "User reactivated"
	}
	return c.JSON(fiber.Map{"message": msg})
}
