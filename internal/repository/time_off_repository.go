package repository

import (
	"staff-scheduler/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeOffRepository interface {
	WithTx(tx *gorm.DB) TimeOffRepository
	Create(req *model.TimeOffRequest) error
	GetByID(id uint) (*model.TimeOffRequest, error)
	GetForUpdate(id uint) (*model.TimeOffRequest, error)
	GetByUser(userID uint) ([]model.TimeOffRequest, error)
	GetAll(status string) ([]model.TimeOffRequest, error)
	GetApprovedInRange(start, end string) ([]model.TimeOffRequest, error)
	CountPending() (int64, error)
	Update(req *model.TimeOffRequest) error
}

type timeOffRepository struct {
	db *gorm.DB
}

func NewTimeOffRepository(db *gorm.DB) TimeOffRepository {
	return &timeOffRepository{db}
}

func (r *timeOffRepository) WithTx(tx *gorm.DB) TimeOffRepository {
	return &timeOffRepository{tx}
}

func (r *timeOffRepository) Create(req *model.TimeOffRequest) error {
	return r.db.Create(req).Error
}

func (r *timeOffRepository) GetByID(id uint) (*model.TimeOffRequest, error) {
	var req model.TimeOffRequest
	err := r.db.Preload("User").Preload("Reviewer").First(&req, id).Error
	return &req, err
}

// GetForUpdate locks the row on drivers that support it so two reviewers
// cannot both move a request out of pending. SQLite ignores the clause.
func (r *timeOffRepository) GetForUpdate(id uint) (*model.TimeOffRequest, error) {
	var req model.TimeOffRequest
	query := r.db
	if r.db.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.First(&req, id).Error
	return &req, err
}

func (r *timeOffRepository) GetByUser(userID uint) ([]model.TimeOffRequest, error) {
	var list []model.TimeOffRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *timeOffRepository) GetAll(status string) ([]model.TimeOffRequest, error) {
	var list []model.TimeOffRequest
	query := r.db.Preload("User").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *timeOffRepository) GetApprovedInRange(start, end string) ([]model.TimeOffRequest, error) {
	var list []model.TimeOffRequest
	err := r.db.Where("status = ? AND start_date <= ? AND end_date >= ?", model.StatusApproved, end, start).
		Order("start_date asc").
		Find(&list).Error
	return list, err
}

func (r *timeOffRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.TimeOffRequest{}).Where("status = ?", model.StatusPending).Count(&count).Error
	return count, err
}

func (r *timeOffRepository) Update(req *model.TimeOffRequest) error {
	return r.db.Omit("User", "Reviewer").Save(req).Error
}
