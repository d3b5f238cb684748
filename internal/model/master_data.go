package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ShiftTypeWork     = "work"
	ShiftTypeVacation = "vacation"
	ShiftTypeLeave    = "leave"
	ShiftTypeSick     = "sick"
)

type Schedule struct {
	gorm.Model
	Title       string     `json:"title"`
	StartDate   string     `json:"start_date" gorm:"size:10;not null;index"` // YYYY-MM-DD
	EndDate     string     `json:"end_date" gorm:"size:10;not null;index"`
	IsPublished bool       `json:"is_published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedByID uint       `json:"created_by_id"`

	// Settings used when the schedule was auto-generated
	GenerationSettings datatypes.JSON `json:"generation_settings"`

	Shifts []Shift `json:"shifts,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type Shift struct {
	gorm.Model
	ScheduleID uint   `json:"schedule_id" gorm:"not null;index"`
	UserID     uint   `json:"user_id" gorm:"not null;index"`
	Date       string `json:"date" gorm:"size:10;not null;index"` // YYYY-MM-DD
	Day        string `json:"day" gorm:"size:10"`                 // Monday, Tuesday, ...
	StartTime  string `json:"start_time" gorm:"size:5;not null"`  // HH:MM, 30-minute aligned
	EndTime    string `json:"end_time" gorm:"size:5;not null"`
	Type       string `json:"type" gorm:"size:20;default:work;index"`
	Notes      string `json:"notes"`
	Area       string `json:"area"`

	// Set on absence rows created from an approved time-off request
	TimeOffRequestID *uint `json:"time_off_request_id" gorm:"index"`
	FullDay          bool  `json:"full_day"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type ClosedDay struct {
	gorm.Model
	Date        string `json:"date" gorm:"size:10;uniqueIndex;not null"` // Format YYYY-MM-DD
	Description string `json:"description"`
}
