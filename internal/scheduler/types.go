package scheduler

import (
	"fmt"
	"time"
)

// ShiftType is the kind of a shift row. Absence kinds outrank work when they
// claim the same slot.
type ShiftType string

const (
	TypeWork     ShiftType = "work"
	TypeVacation ShiftType = "vacation"
	TypeLeave    ShiftType = "leave"
	TypeSick     ShiftType = "sick"
)

const (
	SlotMinutes = 30
	SlotsPerDay = 24 * 60 / SlotMinutes

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Priority returns the precedence of the type when several rows claim one slot.
func (t ShiftType) Priority() int {
	switch t {
	case TypeSick:
		return 4
	case TypeLeave:
		return 3
	case TypeVacation:
		return 2
	case TypeWork:
		return 1
	}
	return 0
}

func (t ShiftType) Valid() bool {
	return t.Priority() > 0
}

func (t ShiftType) IsAbsence() bool {
	return t.Valid() && t != TypeWork
}

// ParseClock turns "HH:MM" into minutes since midnight. "24:00" is accepted as
// the end of the day.
func ParseClock(s string) (int, error) {
	if s == "24:00" {
		return 24 * 60, nil
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsSlotAligned reports whether s is a valid clock on a 30-minute boundary.
func IsSlotAligned(s string) bool {
	m, err := ParseClock(s)
	if err != nil {
		return false
	}
	return m%SlotMinutes == 0
}

// ParseDate parses YYYY-MM-DD as a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Days enumerates every calendar day from start to end inclusive.
func Days(start, end time.Time) []time.Time {
	start = truncateDay(start)
	end = truncateDay(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Overlap clamps [aStart, aEnd] to [bStart, bEnd]. ok is false when the ranges
// do not intersect.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) (start, end time.Time, ok bool) {
	start, end = aStart, aEnd
	if bStart.After(start) {
		start = bStart
	}
	if bEnd.Before(end) {
		end = bEnd
	}
	return start, end, !start.After(end)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
