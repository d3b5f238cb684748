package handler

import (
	"errors"
	"strconv"
	"strings"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fail maps usecase errors onto the HTTP status and the {"error": ...} body.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		status, msg = fiber.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrInvalidInput):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrUnauthorized):
		status, msg = fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, usecase.ErrInactiveUser):
		status, msg = fiber.StatusForbidden, err.Error()
	case errors.Is(err, usecase.ErrConflict),
		errors.Is(err, usecase.ErrAlreadyReviewed),
		errors.Is(err, usecase.ErrAlreadyPublished),
		errors.Is(err, usecase.ErrScheduleLocked):
		status, msg = fiber.StatusConflict, err.Error()
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"message": message, "data": data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message, "data": data})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

var errBadBody = errors.New("invalid request body")

// bind parses the JSON body into req and validates it. The caller answers
// with rejectRequest on error.
func bind(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errBadBody
	}
	return validate.Struct(req)
}

func rejectRequest(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return validationError(c, ve)
	}
	return badRequest(c, err.Error())
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

func viewer(c *fiber.Ctx) usecase.Viewer {
	role, _ := c.Locals("role").(string)
	return usecase.Viewer{UserID: currentUserID(c), Role: role}
}

func isAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == model.RoleAdmin
}

func queryBool(c *fiber.Ctx, key string) bool {
	v := strings.ToLower(c.Query(key))
	return v == "1" || v == "true" || v == "yes"
}
