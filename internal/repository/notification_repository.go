package repository

import (
	"time"

	"staff-scheduler/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(n *model.Notification) error
	CreateMany(list []model.Notification) error
	GetByUser(userID uint, unreadOnly bool) ([]model.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(id, userID uint) (int64, error)
	MarkAllRead(userID uint) (int64, error)
	Delete(id, userID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(n *model.Notification) error {
	return r.db.Create(n).Error
}

func (r *notificationRepository) CreateMany(list []model.Notification) error {
	if len(list) == 0 {
		return nil
	}
	return r.db.Create(&list).Error
}

func (r *notificationRepository) GetByUser(userID uint, unreadOnly bool) ([]model.Notification, error) {
	var list []model.Notification
	query := r.db.Where("user_id = ?", userID).Order("created_at desc").Order("id desc")
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).Where("user_id = ? AND read_at IS NULL", userID).Count(&count).Error
	return count, err
}

// The userID filters below keep one user from touching another's notifications.

func (r *notificationRepository) MarkRead(id, userID uint) (int64, error) {
	res := r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", time.Now())
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) MarkAllRead(userID uint) (int64, error) {
	res := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", time.Now())
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) Delete(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Notification{})
	return res.RowsAffected, res.Error
}
