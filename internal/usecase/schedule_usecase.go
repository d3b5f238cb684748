package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"
	"staff-scheduler/internal/scheduler"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const maxScheduleDays = 62

type ScheduleUsecase struct {
	db         *gorm.DB
	schedules  repository.ScheduleRepository
	shifts     repository.ShiftRepository
	users      repository.UserRepository
	timeOff    repository.TimeOffRepository
	closedDays repository.ClosedDayRepository
	notifier   *NotificationUsecase
	log        *logrus.Logger
}

func NewScheduleUsecase(
	db *gorm.DB,
	schedules repository.ScheduleRepository,
	shifts repository.ShiftRepository,
	users repository.UserRepository,
	timeOff repository.TimeOffRepository,
	closedDays repository.ClosedDayRepository,
	notifier *NotificationUsecase,
	log *logrus.Logger,
) *ScheduleUsecase {
	return &ScheduleUsecase{
		db:         db,
		schedules:  schedules,
		shifts:     shifts,
		users:      users,
		timeOff:    timeOff,
		closedDays: closedDays,
		notifier:   notifier,
		log:        log,
	}
}

type ScheduleInput struct {
	Title       string
	StartDate   string
	EndDate     string
	CreatedByID uint
}

type GenerateRequest struct {
	Title       string
	StartDate   string
	EndDate     string
	EmployeeIDs []uint
	Settings    scheduler.Settings
	CreatedByID uint
}

type GenerateOutcome struct {
	Schedule *model.Schedule   `json:"schedule"`
	Shifts   []model.Shift     `json:"shifts"`
	Status   scheduler.Status  `json:"status"`
	Unmet    []scheduler.Unmet `json:"unmet"`
}

// Viewer is who is asking. Employees only see published schedules.
type Viewer struct {
	UserID uint
	Role   string
}

func (v Viewer) IsAdmin() bool {
	return v.Role == model.RoleAdmin
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type GridRow struct {
	User        UserSummary                  `json:"user"`
	Days        map[string]scheduler.DayView `json:"days"`
	WorkMinutes int                          `json:"work_minutes"`
}

type ScheduleDetail struct {
	Schedule *model.Schedule `json:"schedule"`
	Dates    []string        `json:"dates"`
	Rows     []GridRow       `json:"rows"`
}

type HoursRow struct {
	User         UserSummary `json:"user"`
	WorkMinutes  int         `json:"work_minutes"`
	WorkHours    float64     `json:"work_hours"`
	VacationDays int         `json:"vacation_days"`
	LeaveDays    int         `json:"leave_days"`
	SickDays     int         `json:"sick_days"`
}

// Preview runs the engine against the current roster and approved absences
// without writing anything.
func (u *ScheduleUsecase) Preview(ctx context.Context, req GenerateRequest) (*scheduler.Result, error) {
	in, err := u.engineInput(ctx, req)
	if err != nil {
		return nil, err
	}
	res := scheduler.Generate(in)
	return &res, nil
}

// GenerateAndSave runs the engine and stores the schedule, the generated work
// and the absence layer in one transaction. Nothing is kept if any insert fails.
func (u *ScheduleUsecase) GenerateAndSave(ctx context.Context, req GenerateRequest) (*GenerateOutcome, error) {
	in, err := u.engineInput(ctx, req)
	if err != nil {
		return nil, err
	}
	res := scheduler.Generate(in)

	settings, err := json.Marshal(in.Settings)
	if err != nil {
		return nil, err
	}
	sched := &model.Schedule{
		Title:              req.Title,
		StartDate:          scheduler.FormatDate(in.Start),
		EndDate:            scheduler.FormatDate(in.End),
		CreatedByID:        req.CreatedByID,
		GenerationSettings: datatypes.JSON(settings),
	}

	var rows []model.Shift
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.schedules.WithTx(tx).Create(sched); err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}

		rows = make([]model.Shift, 0, len(res.Shifts))
		for _, a := range res.Shifts {
			rows = append(rows, model.Shift{
				ScheduleID: sched.ID,
				UserID:     a.UserID,
				Date:       a.Date,
				Day:        a.Day,
				StartTime:  a.StartTime,
				EndTime:    a.EndTime,
				Type:       string(a.Type),
			})
		}
		absences, err := u.absenceLayer(tx, sched)
		if err != nil {
			return err
		}
		rows = append(rows, absences...)

		if err := u.shifts.WithTx(tx).CreateMany(rows); err != nil {
			return fmt.Errorf("create shifts: %w", err)
		}
		return nil
	})
	if err != nil {
		u.log.WithError(err).Error("Generate and save rolled back")
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"schedule_id": sched.ID,
		"shifts":      len(rows),
		"status":      res.Status,
		"unmet":       len(res.Unmet),
	}).Info("Schedule generated")

	return &GenerateOutcome{Schedule: sched, Shifts: rows, Status: res.Status, Unmet: res.Unmet}, nil
}

func (u *ScheduleUsecase) engineInput(ctx context.Context, req GenerateRequest) (scheduler.Input, error) {
	startStr, endStr, err := dateRange(req.StartDate, req.EndDate)
	if err != nil {
		return scheduler.Input{}, err
	}
	start, _ := scheduler.ParseDate(startStr)
	end, _ := scheduler.ParseDate(endStr)
	if len(scheduler.Days(start, end)) > maxScheduleDays {
		return scheduler.Input{}, invalid("range is longer than %d days", maxScheduleDays)
	}

	s := req.Settings.Normalize()
	if s.StartHour < 0 || s.EndHour > 24 || s.StartHour >= s.EndHour {
		return scheduler.Input{}, invalid("working window %d-%d", s.StartHour, s.EndHour)
	}
	if s.MinHoursPerEmployee < 0 || s.MaxHoursPerEmployee <= 0 {
		return scheduler.Input{}, invalid("hour bounds %d-%d", s.MinHoursPerEmployee, s.MaxHoursPerEmployee)
	}
	if len(req.EmployeeIDs) == 0 {
		return scheduler.Input{}, invalid("no employees selected")
	}

	db := u.db.WithContext(ctx)
	roster, err := u.users.WithTx(db).GetActiveEmployees()
	if err != nil {
		return scheduler.Input{}, err
	}
	byID := make(map[uint]model.User, len(roster))
	for _, user := range roster {
		byID[user.ID] = user
	}
	employees := make([]scheduler.Employee, 0, len(req.EmployeeIDs))
	seen := make(map[uint]bool)
	for _, id := range req.EmployeeIDs {
		user, ok := byID[id]
		if !ok {
			return scheduler.Input{}, invalid("employee %d is not an active employee", id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		employees = append(employees, scheduler.Employee{ID: user.ID, MinHours: user.MinHours, MaxHours: user.MaxHours})
	}

	approved, err := u.timeOff.WithTx(db).GetApprovedInRange(startStr, endStr)
	if err != nil {
		return scheduler.Input{}, err
	}
	closed, err := u.closedDays.WithTx(db).GetInRange(startStr, endStr)
	if err != nil {
		return scheduler.Input{}, err
	}
	closedSet := make(map[string]bool, len(closed))
	for _, c := range closed {
		closedSet[c.Date] = true
	}

	return scheduler.Input{
		Start:      start,
		End:        end,
		Employees:  employees,
		Settings:   s,
		Absences:   toAbsences(approved),
		ClosedDays: closedSet,
	}, nil
}

// absenceLayer builds absence rows for every approved request overlapping the
// schedule.
func (u *ScheduleUsecase) absenceLayer(tx *gorm.DB, sched *model.Schedule) ([]model.Shift, error) {
	approved, err := u.timeOff.WithTx(tx).GetApprovedInRange(sched.StartDate, sched.EndDate)
	if err != nil {
		return nil, err
	}
	var rows []model.Shift
	for i := range approved {
		r, err := absenceRows(&approved[i], sched)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r...)
	}
	return rows, nil
}

func (u *ScheduleUsecase) Create(ctx context.Context, in ScheduleInput) (*model.Schedule, error) {
	start, end, err := dateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	sched := &model.Schedule{Title: in.Title, StartDate: start, EndDate: end, CreatedByID: in.CreatedByID}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.schedules.WithTx(tx).Create(sched); err != nil {
			return err
		}
		rows, err := u.absenceLayer(tx, sched)
		if err != nil {
			return err
		}
		return u.shifts.WithTx(tx).CreateMany(rows)
	})
	if err != nil {
		return nil, err
	}
	u.log.WithField("schedule_id", sched.ID).Info("Schedule created")
	return sched, nil
}

func (u *ScheduleUsecase) List(viewer Viewer) ([]model.Schedule, error) {
	return u.schedules.GetAll(!viewer.IsAdmin())
}

func (u *ScheduleUsecase) load(id uint, viewer Viewer) (*model.Schedule, error) {
	sched, err := u.schedules.GetByID(id)
	if err != nil {
		return nil, notFound(err, "schedule")
	}
	if !viewer.IsAdmin() && !sched.IsPublished {
		return nil, fmt.Errorf("schedule %d: %w", id, ErrNotFound)
	}
	return sched, nil
}

// Get returns the schedule with its consolidated employee/day grid.
func (u *ScheduleUsecase) Get(id uint, viewer Viewer) (*ScheduleDetail, error) {
	sched, err := u.load(id, viewer)
	if err != nil {
		return nil, err
	}
	shifts, err := u.shifts.GetBySchedule(id)
	if err != nil {
		return nil, err
	}

	start, _ := scheduler.ParseDate(sched.StartDate)
	end, _ := scheduler.ParseDate(sched.EndDate)
	detail := &ScheduleDetail{Schedule: sched, Dates: []string{}, Rows: []GridRow{}}
	for _, d := range scheduler.Days(start, end) {
		detail.Dates = append(detail.Dates, scheduler.FormatDate(d))
	}

	grid := scheduler.BuildGrid(toEntries(shifts))
	for _, user := range usersOf(shifts) {
		detail.Rows = append(detail.Rows, GridRow{
			User:        user,
			Days:        grid[user.ID],
			WorkMinutes: grid.WorkMinutes(user.ID),
		})
	}
	return detail, nil
}

// HoursReport sums the resolved work time per employee. Work hidden under an
// absence does not count.
func (u *ScheduleUsecase) HoursReport(id uint) ([]HoursRow, error) {
	if _, err := u.load(id, Viewer{Role: model.RoleAdmin}); err != nil {
		return nil, err
	}
	shifts, err := u.shifts.GetBySchedule(id)
	if err != nil {
		return nil, err
	}
	grid := scheduler.BuildGrid(toEntries(shifts))

	report := []HoursRow{}
	for _, user := range usersOf(shifts) {
		minutes := grid.WorkMinutes(user.ID)
		report = append(report, HoursRow{
			User:         user,
			WorkMinutes:  minutes,
			WorkHours:    float64(minutes) / 60,
			VacationDays: grid.AbsenceDays(user.ID, scheduler.TypeVacation),
			LeaveDays:    grid.AbsenceDays(user.ID, scheduler.TypeLeave),
			SickDays:     grid.AbsenceDays(user.ID, scheduler.TypeSick),
		})
	}
	return report, nil
}

// Update changes the title and, while the schedule has no work shifts, its
// dates. Moving the dates rebuilds the absence layer for the new range.
func (u *ScheduleUsecase) Update(ctx context.Context, id uint, in ScheduleInput) (*model.Schedule, error) {
	sched, err := u.schedules.GetByID(id)
	if err != nil {
		return nil, notFound(err, "schedule")
	}

	start, end := sched.StartDate, sched.EndDate
	if in.StartDate != "" || in.EndDate != "" {
		if in.StartDate == "" {
			in.StartDate = sched.StartDate
		}
		if in.EndDate == "" {
			in.EndDate = sched.EndDate
		}
		if start, end, err = dateRange(in.StartDate, in.EndDate); err != nil {
			return nil, err
		}
	}

	moved := start != sched.StartDate || end != sched.EndDate
	if moved {
		count, err := u.schedules.CountWorkShifts(id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrScheduleLocked
		}
		sched.StartDate, sched.EndDate = start, end
	}
	if in.Title != "" {
		sched.Title = in.Title
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.schedules.WithTx(tx).Update(sched); err != nil {
			return err
		}
		if !moved {
			return nil
		}
		// Only absence rows are left; rewrite them for the new range
		if _, err := u.shifts.WithTx(tx).DeleteBySchedule(id); err != nil {
			return err
		}
		rows, err := u.absenceLayer(tx, sched)
		if err != nil {
			return err
		}
		return u.shifts.WithTx(tx).CreateMany(rows)
	})
	if err != nil {
		return nil, err
	}
	return sched, nil
}

// Publish is one-way. Every employee with a row in the schedule is notified
// and mailed.
func (u *ScheduleUsecase) Publish(id uint) (*model.Schedule, error) {
	sched, err := u.schedules.GetByID(id)
	if err != nil {
		return nil, notFound(err, "schedule")
	}
	if sched.IsPublished {
		return nil, ErrAlreadyPublished
	}

	now := time.Now()
	sched.IsPublished = true
	sched.PublishedAt = &now
	if err := u.schedules.Update(sched); err != nil {
		return nil, err
	}

	recipients, err := u.shifts.GetUserIDsBySchedule(id)
	if err != nil {
		u.log.WithError(err).Error("Failed to load schedule recipients")
	}
	u.notifier.Notify(recipients, Notice{
		Kind:    model.NotifySchedulePublished,
		Title:   "New schedule published",
		Body:    fmt.Sprintf("The schedule %s to %s is now available.", sched.StartDate, sched.EndDate),
		Payload: map[string]interface{}{"schedule_id": sched.ID},
		Email:   true,
	})

	u.log.WithFields(logrus.Fields{"schedule_id": id, "recipients": len(recipients)}).Info("Schedule published")
	return sched, nil
}

func (u *ScheduleUsecase) Delete(id uint) error {
	if _, err := u.schedules.GetByID(id); err != nil {
		return notFound(err, "schedule")
	}
	if err := u.schedules.Delete(id); err != nil {
		return err
	}
	u.log.WithField("schedule_id", id).Info("Schedule deleted")
	return nil
}

// ResetShifts deletes every shift of the schedule and writes back the absence
// layer of approved time off, all in one transaction.
func (u *ScheduleUsecase) ResetShifts(ctx context.Context, id uint) (int64, error) {
	sched, err := u.schedules.GetByID(id)
	if err != nil {
		return 0, notFound(err, "schedule")
	}

	var deleted int64
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := u.shifts.WithTx(tx).DeleteBySchedule(id)
		if err != nil {
			return err
		}
		deleted = n
		rows, err := u.absenceLayer(tx, sched)
		if err != nil {
			return err
		}
		return u.shifts.WithTx(tx).CreateMany(rows)
	})
	if err != nil {
		return 0, err
	}
	u.log.WithFields(logrus.Fields{"schedule_id": id, "deleted": deleted}).Info("Schedule shifts reset")
	return deleted, nil
}

// usersOf lists the distinct employees of the rows, sorted by name.
func usersOf(shifts []model.Shift) []UserSummary {
	seen := make(map[uint]bool)
	var users []UserSummary
	for _, s := range shifts {
		if seen[s.UserID] {
			continue
		}
		seen[s.UserID] = true
		users = append(users, UserSummary{ID: s.UserID, Name: s.User.Name, Position: s.User.Position})
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name == users[j].Name {
			return users[i].ID < users[j].ID
		}
		return users[i].Name < users[j].Name
	})
	return users
}
