package usecase

import (
	"encoding/json"
	"fmt"

	"staff-scheduler/internal/mailer"
	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Pusher delivers a live event to the user's open connections.
type Pusher interface {
	SendToUser(userID uint, eventType string, data interface{})
}

const EventNotification = "notification"

type NotificationUsecase struct {
	repo   repository.NotificationRepository
	users  repository.UserRepository
	pusher Pusher
	mail   mailer.Mailer
	log    *logrus.Logger
}

func NewNotificationUsecase(repo repository.NotificationRepository, users repository.UserRepository, pusher Pusher, mail mailer.Mailer, log *logrus.Logger) *NotificationUsecase {
	return &NotificationUsecase{repo: repo, users: users, pusher: pusher, mail: mail, log: log}
}

// Notice is one notification to deliver. When Email is set the user also gets
// a plain text mail with the same title and body.
type Notice struct {
	Kind    string
	Title   string
	Body    string
	Payload interface{}
	Email   bool
}

// Notify persists the notification first and then pushes it, so a lost socket
// only costs the live update. Delivery problems are logged, never returned.
func (u *NotificationUsecase) Notify(userIDs []uint, n Notice) {
	var payload datatypes.JSON
	if n.Payload != nil {
		raw, err := json.Marshal(n.Payload)
		if err != nil {
			u.log.WithError(err).Error("Failed to encode notification payload")
		} else {
			payload = datatypes.JSON(raw)
		}
	}

	for _, id := range userIDs {
		row := &model.Notification{UserID: id, Kind: n.Kind, Title: n.Title, Body: n.Body, Payload: payload}
		if err := u.repo.Create(row); err != nil {
			u.log.WithFields(logrus.Fields{"user_id": id, "kind": n.Kind}).WithError(err).Error("Failed to save notification")
			continue
		}
		if u.pusher != nil {
			u.pusher.SendToUser(id, EventNotification, row)
		}
		if n.Email {
			u.email(id, n.Title, n.Body)
		}
	}
}

func (u *NotificationUsecase) email(userID uint, subject, body string) {
	user, err := u.users.GetByID(userID)
	if err != nil || user.Email == "" {
		return
	}
	if err := u.mail.Send([]string{user.Email}, subject, body); err != nil {
		u.log.WithFields(logrus.Fields{"user_id": userID, "subject": subject}).WithError(err).Warn("Failed to send email")
	}
}

func (u *NotificationUsecase) List(userID uint, unreadOnly bool) ([]model.Notification, int64, error) {
	list, err := u.repo.GetByUser(userID, unreadOnly)
	if err != nil {
		return nil, 0, err
	}
	unread, err := u.repo.CountUnread(userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (u *NotificationUsecase) MarkRead(userID, id uint) error {
	affected, err := u.repo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("notification %d: %w", id, ErrNotFound)
	}
	return nil
}

func (u *NotificationUsecase) MarkAllRead(userID uint) (int64, error) {
	return u.repo.MarkAllRead(userID)
}

func (u *NotificationUsecase) Delete(userID, id uint) error {
	affected, err := u.repo.Delete(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("notification %d: %w", id, ErrNotFound)
	}
	return nil
}
