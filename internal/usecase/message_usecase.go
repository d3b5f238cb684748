package usecase

import (
	"fmt"
	"time"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"

	"github.com/sirupsen/logrus"
)

type MessageUsecase struct {
	repo     repository.MessageRepository
	users    repository.UserRepository
	notifier *NotificationUsecase
	log      *logrus.Logger
}

func NewMessageUsecase(repo repository.MessageRepository, users repository.UserRepository, notifier *NotificationUsecase, log *logrus.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, users: users, notifier: notifier, log: log}
}

func (u *MessageUsecase) Send(senderID, recipientID uint, subject, body string) (*model.Message, error) {
	if senderID == recipientID {
		return nil, invalid("cannot message yourself")
	}
	recipient, err := u.users.GetByID(recipientID)
	if err != nil {
		return nil, notFound(err, "recipient")
	}
	if !recipient.IsActive {
		return nil, invalid("recipient is deactivated")
	}

	msg := &model.Message{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Subject:     subject,
		Body:        body,
		SentAt:      time.Now(),
	}
	if err := u.repo.Create(msg); err != nil {
		return nil, err
	}

	u.notifier.Notify([]uint{recipient.ID}, Notice{
		Kind:    model.NotifyMessageReceived,
		Title:   "New message",
		Body:    subject,
		Payload: map[string]interface{}{"message_id": msg.ID, "sender_id": senderID},
	})
	u.log.WithFields(logrus.Fields{"message_id": msg.ID, "from": senderID, "to": recipient.ID}).Debug("Message sent")
	return msg, nil
}

func (u *MessageUsecase) Inbox(userID uint) ([]model.Message, int64, error) {
	list, err := u.repo.GetInbox(userID)
	if err != nil {
		return nil, 0, err
	}
	unread, err := u.repo.CountUnread(userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (u *MessageUsecase) Sent(userID uint) ([]model.Message, error) {
	return u.repo.GetSent(userID)
}

// Get opens a message for one of its two parties; the recipient opening it
// marks it read.
func (u *MessageUsecase) Get(userID, id uint) (*model.Message, error) {
	msg, err := u.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "message")
	}
	switch userID {
	case msg.RecipientID:
		if msg.DeletedByRecipient {
			return nil, fmt.Errorf("message %d: %w", id, ErrNotFound)
		}
		if msg.ReadAt == nil {
			if err := u.repo.MarkRead(id); err != nil {
				return nil, err
			}
			now := time.Now()
			msg.ReadAt = &now
		}
	case msg.SenderID:
		if msg.DeletedBySender {
			return nil, fmt.Errorf("message %d: %w", id, ErrNotFound)
		}
	default:
		return nil, fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	return msg, nil
}

// Delete removes the message from the caller's own box only.
func (u *MessageUsecase) Delete(userID, id uint) error {
	msg, err := u.repo.GetByID(id)
	if err != nil {
		return notFound(err, "message")
	}
	switch userID {
	case msg.RecipientID:
		return u.repo.HideForRecipient(id)
	case msg.SenderID:
		return u.repo.HideForSender(id)
	}
	return fmt.Errorf("message %d: %w", id, ErrNotFound)
}
