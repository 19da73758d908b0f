package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteRepository scopes every read and write to the owning account. A note
// owned by someone else is indistinguishable from a missing one.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	FindByIDForOwner(ctx context.Context, id, ownerID uint) (*domain.Note, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.Note, error)
	ListByOwnerPaged(ctx context.Context, ownerID uint, req PageRequest) (PageResult[domain.Note], error)
	UpdateForOwner(ctx context.Context, id, ownerID uint, updates map[string]any) error
	DeleteForOwner(ctx context.Context, id, ownerID uint) error
}

type GormNoteRepository struct{ db *gorm.DB }

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

func (r *GormNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "note", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(ctx, "note", "create", "success")
	return nil
}

func (r *GormNoteRepository) FindByIDForOwner(ctx context.Context, id, ownerID uint) (*domain.Note, error) {
	var note domain.Note
	if err := r.db.WithContext(ctx).Where("id = ? AND created_by = ?", id, ownerID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(ctx, "note", "find_by_id", "not_found")
			return nil, ErrNoteNotFound
		}
		observability.RecordRepositoryOperation(ctx, "note", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "note", "find_by_id", "success")
	return &note, nil
}

func (r *GormNoteRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Note, error) {
	notes := []domain.Note{}
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("updated_at desc").Order("id desc").
		Find(&notes).Error
	if err != nil {
		observability.RecordRepositoryOperation(ctx, "note", "list", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "note", "list", "success")
	return notes, nil
}

func (r *GormNoteRepository) ListByOwnerPaged(ctx context.Context, ownerID uint, req PageRequest) (PageResult[domain.Note], error) {
	req = req.normalized()

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Note{}).Where("created_by = ?", ownerID).Count(&total).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "note", "list_paged", "error")
		return PageResult[domain.Note]{}, err
	}
	var notes []domain.Note
	if total > 0 {
		err := r.db.WithContext(ctx).
			Where("created_by = ?", ownerID).
			Order("updated_at desc").Order("id desc").
			Offset(req.offset()).Limit(req.PageSize).
			Find(&notes).Error
		if err != nil {
			observability.RecordRepositoryOperation(ctx, "note", "list_paged", "error")
			return PageResult[domain.Note]{}, err
		}
	}
	observability.RecordRepositoryOperation(ctx, "note", "list_paged", "success")
	return newPageResult(req, notes, total), nil
}

func (r *GormNoteRepository) UpdateForOwner(ctx context.Context, id, ownerID uint, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Note{}).Where("id = ? AND created_by = ?", id, ownerID).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "note", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "note", "update", "not_found")
		return ErrNoteNotFound
	}
	observability.RecordRepositoryOperation(ctx, "note", "update", "success")
	return nil
}

func (r *GormNoteRepository) DeleteForOwner(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND created_by = ?", id, ownerID).Delete(&domain.Note{})
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "note", "delete", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "note", "delete", "not_found")
		return ErrNoteNotFound
	}
	observability.RecordRepositoryOperation(ctx, "note", "delete", "success")
	return nil
}
