package repository

import (
	"context"
	"errors"

	"crewdesk/internal/domain/entity"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the operations for location persistence.
type LocationRepository interface {
	GetAll(ctx context.Context) ([]entity.Location, error)

	// GetByID retrieves a single location by id, or ErrLocationNotFound.
	GetByID(ctx context.Context, id int) (*entity.Location, error)

	// Add persists a new location and assigns it the next integer id.
	Add(ctx context.Context, location *entity.Location) error

	// Update replaces the stored location with the same id; no-op when absent.
	Update(ctx context.Context, location *entity.Location) error

	// Delete removes the location with the given id; no-op when absent.
	Delete(ctx context.Context, id int) error

	// SeedCountries inserts the given country locations, skipping any
	// whose lower-cased name matches an existing country. Returns the
	// number of locations actually added.
	SeedCountries(ctx context.Context, countries []entity.Location) (int, error)
}
