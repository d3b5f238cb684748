package repository

import (
	"staff-scheduler/internal/model"

	"gorm.io/gorm"
)

const batchSize = 200

type ShiftRepository interface {
	WithTx(tx *gorm.DB) ShiftRepository
	Create(shift *model.Shift) error
	CreateMany(shifts []model.Shift) error
	GetByID(id uint) (*model.Shift, error)
	GetBySchedule(scheduleID uint) ([]model.Shift, error)
	GetByUserAndDate(userID uint, date string) ([]model.Shift, error)
	GetByTimeOffRequest(requestID uint) ([]model.Shift, error)
	GetPublishedByUserAndRange(userID uint, start, end string) ([]model.Shift, error)
	GetUserIDsBySchedule(scheduleID uint) ([]uint, error)
	Update(shift *model.Shift) error
	Delete(id uint) error
	DeleteBySchedule(scheduleID uint) (int64, error)
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) WithTx(tx *gorm.DB) ShiftRepository {
	return &shiftRepository{tx}
}

func (r *shiftRepository) Create(shift *model.Shift) error {
	return r.db.Create(shift).Error
}

func (r *shiftRepository) CreateMany(shifts []model.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	return r.db.CreateInBatches(&shifts, batchSize).Error
}

func (r *shiftRepository) GetByID(id uint) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.Preload("User").First(&shift, id).Error
	return &shift, err
}

func (r *shiftRepository) GetBySchedule(scheduleID uint) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Preload("User").
		Where("schedule_id = ?", scheduleID).
		Order("date asc").Order("user_id asc").Order("start_time asc").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByUserAndDate(userID uint, date string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Where("user_id = ? AND date = ?", userID, date).Order("start_time asc").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByTimeOffRequest(requestID uint) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Where("time_off_request_id = ?", requestID).Order("date asc").Find(&shifts).Error
	return shifts, err
}

// GetPublishedByUserAndRange is the employee view: only shifts of published
// schedules are visible.
func (r *shiftRepository) GetPublishedByUserAndRange(userID uint, start, end string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Joins("JOIN schedules ON schedules.id = shifts.schedule_id AND schedules.deleted_at IS NULL").
		Where("shifts.user_id = ? AND shifts.date >= ? AND shifts.date <= ? AND schedules.is_published = ?", userID, start, end, true).
		Order("shifts.date asc").Order("shifts.start_time asc").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetUserIDsBySchedule(scheduleID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Shift{}).Where("schedule_id = ?", scheduleID).Distinct().Pluck("user_id", &ids).Error
	return ids, err
}

func (r *shiftRepository) Update(shift *model.Shift) error {
	return r.db.Omit("User").Save(shift).Error
}

func (r *shiftRepository) Delete(id uint) error {
	return r.db.Delete(&model.Shift{}, id).Error
}

func (r *shiftRepository) DeleteBySchedule(scheduleID uint) (int64, error) {
	res := r.db.Where("schedule_id = ?", scheduleID).Delete(&model.Shift{})
	return res.RowsAffected, res.Error
}
