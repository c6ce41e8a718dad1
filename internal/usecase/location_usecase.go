package usecase

import (
	"context"

	"crewdesk/internal/domain/entity"
)

// CreateLocationInput defines the data required to create a location.
type CreateLocationInput struct {
	Name             string `json:"name" validate:"required"`
	Type             string `json:"type" validate:"required,oneof=Country City Village"`
	CountryCode      string `json:"countryCode"`
	ParentLocationID *int   `json:"parentLocationId"`
}

// UpdateLocationInput defines the data accepted when updating a location.
type UpdateLocationInput struct {
	Name             string `json:"name" validate:"required"`
	Type             string `json:"type" validate:"required,oneof=Country City Village"`
	CountryCode      string `json:"countryCode"`
	ParentLocationID *int   `json:"parentLocationId"`
}

// LocationUsecase defines the interface for the location directory.
type LocationUsecase interface {
	List(ctx context.Context) ([]entity.Location, error)
	Get(ctx context.Context, id int) (*entity.Location, error)
	Create(ctx context.Context, input CreateLocationInput) (*entity.Location, error)
	Update(ctx context.Context, id int, input UpdateLocationInput) (*entity.Location, error)
	Delete(ctx context.Context, id int) error

	// ImportCountries pulls the world country list from the directory API
	// and seeds it into the stored locations, deduplicated by name.
	// Returns the number of countries added.
	ImportCountries(ctx context.Context) (int, error)
}
