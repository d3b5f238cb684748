package usecase

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("invalid credentials")
	ErrInactiveUser     = errors.New("account is deactivated")
	ErrAlreadyReviewed  = errors.New("time off request already reviewed")
	ErrScheduleLocked   = errors.New("schedule dates are locked once shifts exist")
	ErrAlreadyPublished = errors.New("schedule already published")
)

// notFound maps gorm's missing-row error to ErrNotFound and wraps the rest.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("load %s: %w", what, err)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}
