// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer, so the flat-file implementation can later
// be swapped for a real datastore without touching callers.
package repository

import (
	"context"
	"errors"

	"crewdesk/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// GetAll returns every stored user.
	GetAll(ctx context.Context) ([]entity.User, error)

	// GetByID retrieves a single user by id, or ErrUserNotFound.
	GetByID(ctx context.Context, id int) (*entity.User, error)

	// GetByEmail retrieves a single user by email address, or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Add persists a new user and assigns it the next integer id.
	Add(ctx context.Context, user *entity.User) error

	// Update replaces the stored user with the same id. Updating an id
	// that does not exist is a no-op.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given id. Deleting an id that
	// does not exist is a no-op.
	Delete(ctx context.Context, id int) error
}
