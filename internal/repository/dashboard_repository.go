package repository

import (
	"staff-scheduler/internal/model"

	"gorm.io/gorm"
)

type DashboardStats struct {
	ActiveEmployees     int64             `json:"active_employees"`
	PendingTimeOff      int64             `json:"pending_time_off"`
	PublishedSchedules  int64             `json:"published_schedules"`
	DraftSchedules      int64             `json:"draft_schedules"`
	ShiftsToday         int64             `json:"shifts_today"`
	AbsencesByTypeToday map[string]int64  `json:"absences_today"`
	UpcomingClosedDays  []model.ClosedDay `json:"upcoming_closed_days"`
}

type DashboardRepository interface {
	GetDashboardStats(today string) (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(today string) (*DashboardStats, error) {
	stats := &DashboardStats{
		AbsencesByTypeToday: map[string]int64{
			model.ShiftTypeVacation: 0,
			model.ShiftTypeLeave:    0,
			model.ShiftTypeSick:     0,
		},
		UpcomingClosedDays: []model.ClosedDay{},
	}

	// 1. Active employees
	if err := r.db.Model(&model.User{}).
		Where("role = ? AND is_active = ?", model.RoleEmployee, true).
		Count(&stats.ActiveEmployees).Error; err != nil {
		return nil, err
	}

	// 2. Pending time off
	if err := r.db.Model(&model.TimeOffRequest{}).
		Where("status = ?", model.StatusPending).
		Count(&stats.PendingTimeOff).Error; err != nil {
		return nil, err
	}

	// 3. Schedules
	if err := r.db.Model(&model.Schedule{}).Where("is_published = ?", true).Count(&stats.PublishedSchedules).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Schedule{}).Where("is_published = ?", false).Count(&stats.DraftSchedules).Error; err != nil {
		return nil, err
	}

	// 4. Today, after absences outrank work
	fullDayAbsence := r.db.Table("shifts AS absent").Select("1").
		Where("absent.user_id = shifts.user_id AND absent.date = shifts.date").
		Where("absent.full_day = ? AND absent.type <> ? AND absent.deleted_at IS NULL", true, model.ShiftTypeWork)
	if err := r.db.Model(&model.Shift{}).
		Where("shifts.date = ? AND shifts.type = ?", today, model.ShiftTypeWork).
		Where("NOT EXISTS (?)", fullDayAbsence).
		Count(&stats.ShiftsToday).Error; err != nil {
		return nil, err
	}

	var absences []struct {
		Type  string
		Count int64
	}
	if err := r.db.Model(&model.Shift{}).
		Where("date = ? AND type <> ?", today, model.ShiftTypeWork).
		Group("type").Select("type, count(distinct user_id) as count").
		Scan(&absences).Error; err != nil {
		return nil, err
	}
	for _, a := range absences {
		stats.AbsencesByTypeToday[a.Type] = a.Count
	}

	if err := r.db.Where("date >= ?", today).Order("date asc").Limit(5).Find(&stats.UpcomingClosedDays).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
