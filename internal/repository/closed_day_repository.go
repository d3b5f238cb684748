package repository

import (
	"staff-scheduler/internal/model"

	"gorm.io/gorm"
)

type ClosedDayRepository interface {
	WithTx(tx *gorm.DB) ClosedDayRepository
	GetAll() ([]model.ClosedDay, error)
	GetInRange(start, end string) ([]model.ClosedDay, error)
	Create(day *model.ClosedDay) error
	Delete(id uint) error
	IsClosed(date string) (bool, error)
	GetByID(id uint) (*model.ClosedDay, error)
	Update(day *model.ClosedDay) error
}

type closedDayRepository struct {
	db *gorm.DB
}

func NewClosedDayRepository(db *gorm.DB) ClosedDayRepository {
	return &closedDayRepository{db}
}

func (r *closedDayRepository) WithTx(tx *gorm.DB) ClosedDayRepository {
	return &closedDayRepository{tx}
}

func (r *closedDayRepository) GetAll() ([]model.ClosedDay, error) {
	var days []model.ClosedDay
	err := r.db.Order("date desc").Find(&days).Error
	return days, err
}

func (r *closedDayRepository) GetInRange(start, end string) ([]model.ClosedDay, error) {
	var days []model.ClosedDay
	err := r.db.Where("date >= ? AND date <= ?", start, end).Order("date asc").Find(&days).Error
	return days, err
}

func (r *closedDayRepository) Create(day *model.ClosedDay) error {
	return r.db.Create(day).Error
}

// Delete removes the row for good so the unique date can be reused.
func (r *closedDayRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&model.ClosedDay{}, id).Error
}

func (r *closedDayRepository) IsClosed(date string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ClosedDay{}).Where("date = ?", date).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *closedDayRepository) GetByID(id uint) (*model.ClosedDay, error) {
	var day model.ClosedDay
	err := r.db.First(&day, id).Error
	return &day, err
}

func (r *closedDayRepository) Update(day *model.ClosedDay) error {
	return r.db.Save(day).Error
}
