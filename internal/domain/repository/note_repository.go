package repository

import (
	"context"
	"errors"

	"crewdesk/internal/domain/entity"
)

// ErrNoteNotFound is returned when a note is not found.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the operations for note persistence.
type NoteRepository interface {
	// ListByUser returns every note owned by the given user.
	ListByUser(ctx context.Context, userID int) ([]entity.Note, error)

	// GetByID retrieves a single note by id, or ErrNoteNotFound.
	GetByID(ctx context.Context, id int) (*entity.Note, error)

	// Add persists a new note and assigns it the next integer id.
	Add(ctx context.Context, note *entity.Note) error

	// Update replaces the stored note with the same id; no-op when absent.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes the note with the given id; no-op when absent.
	Delete(ctx context.Context, id int) error
}
