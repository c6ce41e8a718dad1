package jsonstore

import (
	"context"
	"path/filepath"
	"strings"

	"crewdesk/config"
	"crewdesk/internal/domain/entity"
	"crewdesk/internal/domain/repository"
)

// locationRepository implements repository.LocationRepository on a
// locations.json file.
type locationRepository struct {
	store *Store[entity.Location]
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(cfg *config.Config) (repository.LocationRepository, error) {
	store, err := NewStore[entity.Location](filepath.Join(cfg.Storage.DataDir, "locations.json"))
	if err != nil {
		return nil, err
	}

	return &locationRepository{store: store}, nil
}

func (repo *locationRepository) GetAll(ctx context.Context) ([]entity.Location, error) {
	return repo.store.Load()
}

func (repo *locationRepository) GetByID(ctx context.Context, id int) (*entity.Location, error) {
	locations, err := repo.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range locations {
		if locations[i].ID == id {
			return &locations[i], nil
		}
	}

	return nil, repository.ErrLocationNotFound
}

func (repo *locationRepository) Add(ctx context.Context, location *entity.Location) error {
	locations, err := repo.store.Load()
	if err != nil {
		return err
	}

	location.ID = nextLocationID(locations)
	locations = append(locations, *location)

	return repo.store.Save(locations)
}

func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locations, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range locations {
		if locations[i].ID == location.ID {
			locations[i] = *location

			return repo.store.Save(locations)
		}
	}

	return nil
}

func (repo *locationRepository) Delete(ctx context.Context, id int) error {
	locations, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range locations {
		if locations[i].ID == id {
			locations = append(locations[:i], locations[i+1:]...)

			return repo.store.Save(locations)
		}
	}

	return nil
}

func (repo *locationRepository) SeedCountries(ctx context.Context, countries []entity.Location) (int, error) {
	locations, err := repo.store.Load()
	if err != nil {
		return 0, err
	}

	existing := make(map[string]struct{})
	for _, loc := range locations {
		if loc.Type == entity.LocationTypeCountry {
			existing[strings.ToLower(loc.Name)] = struct{}{}
		}
	}

	added := 0
	nextID := nextLocationID(locations)
	for _, country := range countries {
		key := strings.ToLower(country.Name)
		if _, ok := existing[key]; ok {
			continue
		}

		country.ID = nextID
		country.Type = entity.LocationTypeCountry
		locations = append(locations, country)
		existing[key] = struct{}{}
		nextID++
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := repo.store.Save(locations); err != nil {
		return 0, err
	}

	return added, nil
}

func nextLocationID(locations []entity.Location) int {
	next := 1
	for _, loc := range locations {
		if loc.ID >= next {
			next = loc.ID + 1
		}
	}

	return next
}
