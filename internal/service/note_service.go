package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"noteauth/internal/model"
	"noteauth/internal/repository"
)

// ErrNoteNotFound is returned when the user has no note with the requested id.
var ErrNoteNotFound = errors.New("note not found")

// NoteService handles per-user note operations.
type NoteService interface {
	CreateNote(ctx context.Context, userID uint, text string) (*model.Note, error)
	GetNote(ctx context.Context, userID, id uint) (*model.Note, error)
	UpdateNote(ctx context.Context, userID, id uint, text string) error
	DeleteNote(ctx context.Context, userID, id uint) error
	ListNotes(ctx context.Context, userID uint) ([]model.Note, error)
}

type noteService struct {
	repo repository.NoteRepository
}

// NewNoteService creates a new note service.
func NewNoteService(repo repository.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) CreateNote(ctx context.Context, userID uint, text string) (*model.Note, error) {
	note := &model.Note{
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, userID, id uint) (*model.Note, error) {
	return s.find(ctx, userID, id)
}

func (s *noteService) UpdateNote(ctx context.Context, userID, id uint, text string) error {
	note, err := s.find(ctx, userID, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	note.Text = text
	note.UpdatedAt = &now

	if err := s.repo.Update(ctx, note); err != nil {
		return fmt.Errorf("update note %d: %w", id, err)
	}
	return nil
}

// DeleteNote removes the note if it exists. A missing note is not an error.
func (s *noteService) DeleteNote(ctx context.Context, userID, id uint) error {
	note, err := s.find(ctx, userID, id)
	if errors.Is(err, ErrNoteNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, note); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return nil
}

func (s *noteService) ListNotes(ctx context.Context, userID uint) ([]model.Note, error) {
	notes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes for user %d: %w", userID, err)
	}
	return notes, nil
}

func (s *noteService) find(ctx context.Context, userID, id uint) (*model.Note, error) {
	note, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note %d: %w", id, err)
	}
	return note, nil
}
