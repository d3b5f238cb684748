package repository

import (
	"time"

	"staff-scheduler/internal/model"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(msg *model.Message) error
	GetByID(id uint) (*model.Message, error)
	GetInbox(userID uint) ([]model.Message, error)
	GetSent(userID uint) ([]model.Message, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(id uint) error
	HideForSender(id uint) error
	HideForRecipient(id uint) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db}
}

func (r *messageRepository) Create(msg *model.Message) error {
	return r.db.Omit("Sender", "Recipient").Create(msg).Error
}

func (r *messageRepository) GetByID(id uint) (*model.Message, error) {
	var msg model.Message
	err := r.db.Preload("Sender").Preload("Recipient").First(&msg, id).Error
	return &msg, err
}

func (r *messageRepository) GetInbox(userID uint) ([]model.Message, error) {
	var list []model.Message
	err := r.db.Preload("Sender").
		Where("recipient_id = ? AND deleted_by_recipient = ?", userID, false).
		Order("sent_at desc").Order("id desc").
		Find(&list).Error
	return list, err
}

func (r *messageRepository) GetSent(userID uint) ([]model.Message, error) {
	var list []model.Message
	err := r.db.Preload("Recipient").
		Where("sender_id = ? AND deleted_by_sender = ?", userID, false).
		Order("sent_at desc").Order("id desc").
		Find(&list).Error
	return list, err
}

func (r *messageRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Message{}).
		Where("recipient_id = ? AND deleted_by_recipient = ? AND read_at IS NULL", userID, false).
		Count(&count).Error
	return count, err
}

func (r *messageRepository) MarkRead(id uint) error {
	return r.db.Model(&model.Message{}).Where("id = ? AND read_at IS NULL", id).Update("read_at", time.Now()).Error
}

func (r *messageRepository) HideForSender(id uint) error {
	return r.db.Model(&model.Message{}).Where("id = ?", id).Update("deleted_by_sender", true).Error
}

func (r *messageRepository) HideForRecipient(id uint) error {
	return r.db.Model(&model.Message{}).Where("id = ?", id).Update("deleted_by_recipient", true).Error
}
