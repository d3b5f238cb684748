package handler

import (
	"reflect"
	"strings"

	"staff-scheduler/internal/scheduler"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// HH:MM on a 30 minute boundary
	v.RegisterValidation("slot", func(fl validator.FieldLevel) bool {
		return scheduler.IsSlotAligned(fl.Field().String())
	})
	// YYYY-MM-DD
	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := scheduler.ParseDate(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("shifttype", func(fl validator.FieldLevel) bool {
		return scheduler.ShiftType(fl.Field().String()).Valid()
	})
	return v
}

// validationError answers 400 with the failing field names and tags.
func validationError(c *fiber.Ctx, ve validator.ValidationErrors) error {
	fields := make(map[string]string)
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
}
