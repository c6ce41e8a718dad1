package service

import (
	"context"

	"crewdesk/internal/domain/entity"
)

// CountryDirectory fetches the list of countries from a third-party
// directory API, already mapped to location entities of type Country.
type CountryDirectory interface {
	FetchCountries(ctx context.Context) ([]entity.Location, error)
}
