package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	TimeOffVacation = "vacation"
	TimeOffPersonal = "personal"
	TimeOffSick     = "sick"

	DurationFull   = "full"
	DurationHalfAM = "half_am"
	DurationHalfPM = "half_pm"

	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type TimeOffRequest struct {
	gorm.Model
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	Type       string     `json:"type" gorm:"size:20;not null"`
	StartDate  string     `json:"start_date" gorm:"size:10;not null;index"`
	EndDate    string     `json:"end_date" gorm:"size:10;not null;index"`
	Duration   string     `json:"duration" gorm:"size:10;default:full"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status" gorm:"size:20;default:pending;index"`
	ReviewerID *uint      `json:"reviewer_id"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewNote string     `json:"review_note"`

	// Requester, preloaded for admin lists
	User     User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Reviewer *User `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}

// AbsenceShiftType maps the request kind onto the shift type it produces.
func (r *TimeOffRequest) AbsenceShiftType() string {
	switch r.Type {
	case TimeOffSick:
		return ShiftTypeSick
	case TimeOffPersonal:
		return ShiftTypeLeave
	default:
		return ShiftTypeVacation
	}
}

func (r *TimeOffRequest) IsFullDay() bool {
	return r.Duration == "" || r.Duration == DurationFull
}

// AbsenceWindow is the placeholder time range written for each absent day.
func (r *TimeOffRequest) AbsenceWindow() (string, string) {
	switch r.Duration {
	case DurationHalfAM:
		return "09:00", "13:00"
	case DurationHalfPM:
		return "13:00", "18:00"
	default:
		return "09:00", "18:00"
	}
}
