package usecase

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxDocumentBytes = 10 << 20

type DocumentUsecase struct {
	repo     repository.DocumentRepository
	users    repository.UserRepository
	notifier *NotificationUsecase
	dir      string
	log      *logrus.Logger
}

func NewDocumentUsecase(repo repository.DocumentRepository, users repository.UserRepository, notifier *NotificationUsecase, uploadDir string, log *logrus.Logger) *DocumentUsecase {
	return &DocumentUsecase{
		repo:     repo,
		users:    users,
		notifier: notifier,
		dir:      filepath.Join(uploadDir, "documents"),
		log:      log,
	}
}

type Upload struct {
	OwnerID    uint
	UploadedBy uint
	Kind       string
	Title      string
	FileName   string
	MimeType   string
	Size       int64
	Content    io.Reader
}

// Upload stores the file under a random name and records it for the owner.
func (u *DocumentUsecase) Upload(in Upload) (*model.Document, error) {
	switch in.Kind {
	case "":
		in.Kind = model.DocumentOther
	case model.DocumentPayslip, model.DocumentTax, model.DocumentOther:
	default:
		return nil, invalid("document kind %q", in.Kind)
	}
	if in.Size > maxDocumentBytes {
		return nil, invalid("file is larger than %d bytes", maxDocumentBytes)
	}
	owner, err := u.users.GetByID(in.OwnerID)
	if err != nil {
		return nil, notFound(err, "owner")
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	name := filepath.Base(in.FileName)
	stored := filepath.Join(u.dir, uuid.NewString()+strings.ToLower(filepath.Ext(name)))

	f, err := os.Create(stored)
	if err != nil {
		return nil, err
	}
	written, err := io.Copy(f, io.LimitReader(in.Content, maxDocumentBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && written > maxDocumentBytes {
		err = invalid("file is larger than %d bytes", maxDocumentBytes)
	}
	if err != nil {
		os.Remove(stored)
		return nil, err
	}

	title := in.Title
	if title == "" {
		title = name
	}
	doc := &model.Document{
		OwnerID:      owner.ID,
		UploadedByID: in.UploadedBy,
		Kind:         in.Kind,
		Title:        title,
		FileName:     name,
		StoredPath:   stored,
		MimeType:     in.MimeType,
		SizeBytes:    written,
		UploadedAt:   time.Now(),
	}
	if err := u.repo.Create(doc); err != nil {
		os.Remove(stored)
		return nil, err
	}

	u.notifier.Notify([]uint{owner.ID}, Notice{
		Kind:    model.NotifyDocumentUploaded,
		Title:   "New document",
		Body:    fmt.Sprintf("%s was added to your documents.", title),
		Payload: map[string]interface{}{"document_id": doc.ID},
	})
	u.log.WithFields(logrus.Fields{"document_id": doc.ID, "owner_id": owner.ID, "bytes": written}).Info("Document uploaded")
	return doc, nil
}

func (u *DocumentUsecase) List(viewer Viewer, ownerID uint, kind string) ([]model.Document, error) {
	if !viewer.IsAdmin() {
		return u.repo.GetByOwner(viewer.UserID, kind)
	}
	if ownerID != 0 {
		return u.repo.GetByOwner(ownerID, kind)
	}
	return u.repo.GetAll(kind)
}

// Open returns the record and its file. Employees can only open their own.
func (u *DocumentUsecase) Open(viewer Viewer, id uint) (*model.Document, error) {
	doc, err := u.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "document")
	}
	if !viewer.IsAdmin() && doc.OwnerID != viewer.UserID {
		return nil, ErrForbidden
	}
	if _, err := os.Stat(doc.StoredPath); err != nil {
		return nil, fmt.Errorf("document %d file: %w", id, ErrNotFound)
	}
	return doc, nil
}

func (u *DocumentUsecase) Delete(id uint) error {
	doc, err := u.repo.GetByID(id)
	if err != nil {
		return notFound(err, "document")
	}
	if err := u.repo.Delete(id); err != nil {
		return err
	}
	if err := os.Remove(doc.StoredPath); err != nil && !os.IsNotExist(err) {
		u.log.WithError(err).WithField("document_id", id).Warn("Failed to remove document file")
	}
	return nil
}
