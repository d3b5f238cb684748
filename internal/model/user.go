package model

import "gorm.io/gorm"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"size:20;default:employee;index"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Per-employee bounds used by auto-generation; 0 means "use the request settings"
	MinHours int `json:"min_hours"`
	MaxHours int `json:"max_hours"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
