package database

import (
	"fmt"
	"time"

	"staff-scheduler/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password given to every seeded account.
const DefaultPassword = "changeme123"

type seedUser struct {
	Name     string
	Email    string
	Role     string
	Position string
	MinHours int
	MaxHours int
}

var seedUsers = []seedUser{
	{Name: "Administrator", Email: "admin@example.com", Role: model.RoleAdmin, Position: "Manager", MaxHours: 40},
	{Name: "Anna Berger", Email: "anna@example.com", Role: model.RoleEmployee, Position: "Reception", MinHours: 20, MaxHours: 40},
	{Name: "Ben Keller", Email: "ben@example.com", Role: model.RoleEmployee, Position: "Reception", MinHours: 20, MaxHours: 32},
	{Name: "Clara Wolf", Email: "clara@example.com", Role: model.RoleEmployee, Position: "Back office", MaxHours: 24},
}

// SeedAll creates the default accounts and a sample closed day. Running it
// twice is harmless; existing accounts get their password reset.
func SeedAll(db *gorm.DB, log *logrus.Logger) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range seedUsers {
			user := model.User{
				Name:     s.Name,
				Email:    s.Email,
				Password: string(hashed),
				Role:     s.Role,
				Position: s.Position,
				IsActive: true,
				MinHours: s.MinHours,
				MaxHours: s.MaxHours,
			}
			if err := tx.Where(model.User{Email: s.Email}).FirstOrCreate(&user).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", s.Email, err)
			}
			// Keep the password in sync even when the account already existed
			if err := tx.Model(&user).Update("password", string(hashed)).Error; err != nil {
				return err
			}
			log.WithField("email", s.Email).Info("Seeded user")
		}

		newYear := fmt.Sprintf("%d-01-01", time.Now().Year()+1)
		closed := model.ClosedDay{Date: newYear, Description: "New Year's Day"}
		if err := tx.Where(model.ClosedDay{Date: newYear}).FirstOrCreate(&closed).Error; err != nil {
			return fmt.Errorf("seed closed day: %w", err)
		}
		return nil
	})
}
