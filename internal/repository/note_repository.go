package repository

import (
	"context"

	"gorm.io/gorm"

	"noteauth/internal/model"
)

// NoteRepository defines note persistence operations. Every lookup is scoped
// by the owning user id.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, note *model.Note) error
	FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Note, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create creates a new note.
func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// Update updates an existing note.
func (r *noteRepository) Update(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

// Delete removes a note permanently.
func (r *noteRepository) Delete(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Delete(note).Error
}

// FindByIDAndUser finds a note by id that belongs to userID.
func (r *noteRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByUser lists all notes of a user.
func (r *noteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Note, error) {
	notes := make([]model.Note, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
