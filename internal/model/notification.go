package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotifySchedulePublished = "schedule_published"
	NotifyTimeOffReviewed   = "time_off_reviewed"
	NotifyTimeOffSubmitted  = "time_off_submitted"
	NotifyDocumentUploaded  = "document_uploaded"
	NotifyMessageReceived   = "message_received"
)

type Notification struct {
	gorm.Model
	UserID  uint           `json:"user_id" gorm:"not null;index"`
	Kind    string         `json:"kind" gorm:"size:40"`
	Title   string         `json:"title"`
	Body    string         `json:"body"`
	Payload datatypes.JSON `json:"payload"`
	ReadAt  *time.Time     `json:"read_at"`
}

type Message struct {
	gorm.Model
	SenderID    uint       `json:"sender_id" gorm:"not null;index"`
	RecipientID uint       `json:"recipient_id" gorm:"not null;index"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	SentAt      time.Time  `json:"sent_at"`
	ReadAt      *time.Time `json:"read_at"`

	// Each side can remove the message from its own box
	DeletedBySender    bool `json:"-"`
	DeletedByRecipient bool `json:"-"`

	Sender    User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Recipient User `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
}
