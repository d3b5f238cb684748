package repository

import (
	"staff-scheduler/internal/model"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	WithTx(tx *gorm.DB) ScheduleRepository
	Create(schedule *model.Schedule) error
	GetByID(id uint) (*model.Schedule, error)
	GetAll(publishedOnly bool) ([]model.Schedule, error)
	GetOverlapping(start, end string) ([]model.Schedule, error)
	Update(schedule *model.Schedule) error
	Delete(id uint) error
	CountWorkShifts(id uint) (int64, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db}
}

func (r *scheduleRepository) WithTx(tx *gorm.DB) ScheduleRepository {
	return &scheduleRepository{tx}
}

func (r *scheduleRepository) Create(schedule *model.Schedule) error {
	return r.db.Create(schedule).Error
}

func (r *scheduleRepository) GetByID(id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.First(&schedule, id).Error
	return &schedule, err
}

func (r *scheduleRepository) GetAll(publishedOnly bool) ([]model.Schedule, error) {
	var schedules []model.Schedule
	query := r.db.Order("start_date desc")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Find(&schedules).Error
	return schedules, err
}

// GetOverlapping returns every schedule whose range intersects [start, end].
// Dates are stored as YYYY-MM-DD so string comparison is date order.
func (r *scheduleRepository) GetOverlapping(start, end string) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.Where("start_date <= ? AND end_date >= ?", end, start).Order("start_date asc").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) Update(schedule *model.Schedule) error {
	return r.db.Save(schedule).Error
}

func (r *scheduleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).Delete(&model.Shift{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Schedule{}, id).Error
	})
}

// CountWorkShifts ignores the absence layer, which follows the schedule's
// dates rather than pinning them.
func (r *scheduleRepository) CountWorkShifts(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Shift{}).Where("schedule_id = ? AND type = ?", id, model.ShiftTypeWork).Count(&count).Error
	return count, err
}
