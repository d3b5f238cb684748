package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DocumentPayslip = "payslip"
	DocumentTax     = "tax"
	DocumentOther   = "other"
)

type Document struct {
	gorm.Model
	OwnerID      uint      `json:"owner_id" gorm:"not null;index"`
	UploadedByID uint      `json:"uploaded_by_id"`
	Kind         string    `json:"kind" gorm:"size:20;default:other"`
	Title        string    `json:"title"`
	FileName     string    `json:"file_name"`
	StoredPath   string    `json:"-"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	UploadedAt   time.Time `json:"uploaded_at"`

	Owner User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
