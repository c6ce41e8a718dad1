package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/domain/entity"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/domain/repository"
	"crewdesk/internal/domain/service"
	"crewdesk/internal/usecase"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locations repository.LocationRepository
	directory service.CountryDirectory
	logger    *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(
	locations repository.LocationRepository,
	directory service.CountryDirectory,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locations: locations,
		directory: directory,
		logger:    logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *locationService) List(ctx context.Context) ([]entity.Location, error) {
	locations, err := srv.locations.GetAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "list locations")
	}

	return locations, nil
}

func (srv *locationService) Get(ctx context.Context, id int) (*entity.Location, error) {
	location, err := srv.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, domainerrors.NewStorageError(err, "get location")
	}

	return location, nil
}

func (srv *locationService) Create(ctx context.Context, input usecase.CreateLocationInput) (*entity.Location, error) {
	location := &entity.Location{
		Name:             input.Name,
		Type:             entity.LocationType(input.Type),
		CountryCode:      input.CountryCode,
		ParentLocationID: input.ParentLocationID,
	}
	if err := srv.locations.Add(ctx, location); err != nil {
		return nil, domainerrors.NewStorageError(err, "create location")
	}

	srv.log(ctx).Info("location created", slog.Int("location_id", location.ID))

	return location, nil
}

func (srv *locationService) Update(ctx context.Context, id int, input usecase.UpdateLocationInput) (*entity.Location, error) {
	existing, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Type = entity.LocationType(input.Type)
	existing.CountryCode = input.CountryCode
	existing.ParentLocationID = input.ParentLocationID
	if err := srv.locations.Update(ctx, existing); err != nil {
		return nil, domainerrors.NewStorageError(err, "update location")
	}

	return existing, nil
}

func (srv *locationService) Delete(ctx context.Context, id int) error {
	if _, err := srv.Get(ctx, id); err != nil {
		return err
	}

	// Children keep pointing at the removed id; there is no referential
	// integrity in the directory.
	if err := srv.locations.Delete(ctx, id); err != nil {
		return domainerrors.NewStorageError(err, "delete location")
	}

	return nil
}

// ImportCountries seeds the directory from the external country list.
func (srv *locationService) ImportCountries(ctx context.Context) (int, error) {
	countries, err := srv.directory.FetchCountries(ctx)
	if err != nil {
		srv.log(ctx).Error("country import failed", slog.Any("error", err))

		return 0, domainerrors.ErrCountryImportFailed.WithDetails(err.Error())
	}

	added, err := srv.locations.SeedCountries(ctx, countries)
	if err != nil {
		return 0, domainerrors.NewStorageError(err, "seed countries")
	}

	srv.log(ctx).Info("countries imported",
		slog.Int("fetched", len(countries)),
		slog.Int("added", added),
	)

	return added, nil
}
