package repository

import (
	"staff-scheduler/internal/model"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	GetByOwner(ownerID uint, kind string) ([]model.Document, error)
	GetAll(kind string) ([]model.Document, error)
	GetByID(id uint) (*model.Document, error)
	Create(doc *model.Document) error
	Delete(id uint) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db}
}

func (r *documentRepository) GetByOwner(ownerID uint, kind string) ([]model.Document, error) {
	var docs []model.Document
	query := r.db.Where("owner_id = ?", ownerID).Order("uploaded_at desc")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	err := query.Find(&docs).Error
	return docs, err
}

func (r *documentRepository) GetAll(kind string) ([]model.Document, error) {
	var docs []model.Document
	query := r.db.Preload("Owner").Order("uploaded_at desc")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	err := query.Find(&docs).Error
	return docs, err
}

func (r *documentRepository) GetByID(id uint) (*model.Document, error) {
	var doc model.Document
	err := r.db.First(&doc, id).Error
	return &doc, err
}

func (r *documentRepository) Create(doc *model.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Document{}, id).Error
}
