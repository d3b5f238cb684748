package usecase

import (
	"fmt"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"
	"staff-scheduler/internal/scheduler"

	"github.com/sirupsen/logrus"
)

type ShiftUsecase struct {
	shifts    repository.ShiftRepository
	schedules repository.ScheduleRepository
	users     repository.UserRepository
	log       *logrus.Logger
}

func NewShiftUsecase(shifts repository.ShiftRepository, schedules repository.ScheduleRepository, users repository.UserRepository, log *logrus.Logger) *ShiftUsecase {
	return &ShiftUsecase{shifts: shifts, schedules: schedules, users: users, log: log}
}

type ShiftInput struct {
	ScheduleID uint
	UserID     uint
	Date       string
	StartTime  string
	EndTime    string
	Type       string
	Notes      string
	Area       string
}

type MyDay struct {
	Date string `json:"date"`
	scheduler.DayView
}

// Create adds a manual shift to a schedule.
func (u *ShiftUsecase) Create(in ShiftInput) (*model.Shift, error) {
	shift := &model.Shift{}
	if err := u.apply(shift, in); err != nil {
		return nil, err
	}
	if err := u.shifts.Create(shift); err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"shift_id": shift.ID, "schedule_id": shift.ScheduleID, "user_id": shift.UserID}).Info("Shift created")
	return shift, nil
}

func (u *ShiftUsecase) Get(id uint) (*model.Shift, error) {
	shift, err := u.shifts.GetByID(id)
	if err != nil {
		return nil, notFound(err, "shift")
	}
	return shift, nil
}

// Update edits a manual shift. Rows written for approved time off are owned by
// the request and cannot be edited here.
func (u *ShiftUsecase) Update(id uint, in ShiftInput) (*model.Shift, error) {
	shift, err := u.shifts.GetByID(id)
	if err != nil {
		return nil, notFound(err, "shift")
	}
	if shift.TimeOffRequestID != nil {
		return nil, fmt.Errorf("shift %d belongs to time off request: %w", id, ErrConflict)
	}
	if in.ScheduleID == 0 {
		in.ScheduleID = shift.ScheduleID
	}
	if in.UserID == 0 {
		in.UserID = shift.UserID
	}
	if err := u.apply(shift, in); err != nil {
		return nil, err
	}
	if err := u.shifts.Update(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// Delete removes a manual shift. Absence rows stay as long as their request
// is approved.
func (u *ShiftUsecase) Delete(id uint) error {
	shift, err := u.shifts.GetByID(id)
	if err != nil {
		return notFound(err, "shift")
	}
	if shift.TimeOffRequestID != nil {
		return fmt.Errorf("shift %d belongs to time off request: %w", id, ErrConflict)
	}
	return u.shifts.Delete(id)
}

// Mine returns the employee's published days in [from, to], resolved the same
// way the schedule grid is.
func (u *ShiftUsecase) Mine(userID uint, from, to string) ([]MyDay, error) {
	from, to, err := dateRange(from, to)
	if err != nil {
		return nil, err
	}
	shifts, err := u.shifts.GetPublishedByUserAndRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	grid := scheduler.BuildGrid(toEntries(shifts))
	days := []MyDay{}
	for _, date := range grid.Dates(userID) {
		days = append(days, MyDay{Date: date, DayView: grid[userID][date]})
	}
	return days, nil
}

func (u *ShiftUsecase) apply(shift *model.Shift, in ShiftInput) error {
	sched, err := u.schedules.GetByID(in.ScheduleID)
	if err != nil {
		return notFound(err, "schedule")
	}
	user, err := u.users.GetByID(in.UserID)
	if err != nil {
		return notFound(err, "user")
	}
	if !user.IsActive {
		return invalid("user %d is deactivated", user.ID)
	}

	date, err := scheduler.ParseDate(in.Date)
	if err != nil {
		return invalid("date %q", in.Date)
	}
	if in.Date < sched.StartDate || in.Date > sched.EndDate {
		return invalid("date %s is outside the schedule", in.Date)
	}
	if !scheduler.IsSlotAligned(in.StartTime) || !scheduler.IsSlotAligned(in.EndTime) {
		return invalid("times must be on a 30 minute boundary")
	}
	start, _ := scheduler.ParseClock(in.StartTime)
	end, _ := scheduler.ParseClock(in.EndTime)
	if end <= start {
		return invalid("end time must be after start time")
	}

	kind := scheduler.ShiftType(in.Type)
	if in.Type == "" {
		kind = scheduler.TypeWork
	}
	if !kind.Valid() {
		return invalid("shift type %q", in.Type)
	}

	if kind == scheduler.TypeWork {
		sameDay, err := u.shifts.GetByUserAndDate(user.ID, in.Date)
		if err != nil {
			return err
		}
		for _, other := range sameDay {
			if other.ID == shift.ID || other.Type != model.ShiftTypeWork {
				continue
			}
			oStart, err1 := scheduler.ParseClock(other.StartTime)
			oEnd, err2 := scheduler.ParseClock(other.EndTime)
			if err1 != nil || err2 != nil {
				continue
			}
			if start < oEnd && oStart < end {
				return fmt.Errorf("overlaps shift %d (%s-%s): %w", other.ID, other.StartTime, other.EndTime, ErrConflict)
			}
		}
	}

	shift.ScheduleID = sched.ID
	shift.UserID = user.ID
	shift.Date = in.Date
	shift.Day = date.Weekday().String()
	shift.StartTime = in.StartTime
	shift.EndTime = in.EndTime
	shift.Type = string(kind)
	shift.Notes = in.Notes
	shift.Area = in.Area
	shift.User = model.User{}
	return nil
}
