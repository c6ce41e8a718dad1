package repository

import (
	"context"
	"errors"

	"crewdesk/internal/domain/entity"
)

// ErrHabitNotFound is returned when a habit is not found.
var ErrHabitNotFound = errors.New("habit not found")

// HabitRepository defines the operations for habit persistence.
type HabitRepository interface {
	// ListByUser returns every habit owned by the given user.
	ListByUser(ctx context.Context, userID int) ([]entity.Habit, error)

	// GetByID retrieves a single habit by id, or ErrHabitNotFound.
	GetByID(ctx context.Context, id int) (*entity.Habit, error)

	// Add persists a new habit and assigns it the next integer id.
	Add(ctx context.Context, habit *entity.Habit) error

	// Update replaces the stored habit with the same id; no-op when absent.
	Update(ctx context.Context, habit *entity.Habit) error

	// Delete removes the habit with the given id; no-op when absent.
	Delete(ctx context.Context, id int) error
}
