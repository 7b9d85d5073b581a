package repository

import (
	"context"

	"gorm.io/gorm"

	"jobtrack/internal/model"
)

// DocumentRepository tracks uploaded attachment rows. The bytes live in
// object storage; this store only owns the metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	ListByUser(ctx context.Context, userID uint) ([]model.Document, error)
	GetByID(ctx context.Context, id, userID uint) (*model.Document, error)
	Delete(ctx context.Context, id, userID uint) (bool, error)
}

type gormDocumentRepository struct {
	db    *gorm.DB
	clock model.Clock
}

// NewDocumentRepository returns the GORM-backed DocumentRepository.
func NewDocumentRepository(db *gorm.DB, clock model.Clock) DocumentRepository {
	return &gormDocumentRepository{db: db, clock: clock}
}

func (r *gormDocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	if doc == nil {
		return ErrNilEntity
	}
	doc.CreatedAt = r.clock.Now().UTC()
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormDocumentRepository) ListByUser(ctx context.Context, userID uint) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, translate(err)
	}
	return docs, nil
}

func (r *gormDocumentRepository) GetByID(ctx context.Context, id, userID uint) (*model.Document, error) {
	var doc model.Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&doc).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *gormDocumentRepository) Delete(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Document{})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}
