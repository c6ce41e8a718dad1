package jsonstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/config"
	"crewdesk/internal/domain/entity"
	"crewdesk/internal/domain/repository"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Storage: config.StorageConfig{DataDir: t.TempDir()},
	}
}

func TestUserRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo, err := NewUserRepository(testConfig(t))
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	alice := &entity.User{Name: "Alice", Email: "alice@example.com", Password: "secret"}
	require.NoError(t, repo.Add(ctx, alice))
	assert.Equal(t, 1, alice.ID)

	bob := &entity.User{Name: "Bob", Email: "bob@example.com", Password: "secret"}
	require.NoError(t, repo.Add(ctx, bob))
	assert.Equal(t, 2, bob.ID)

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	alice.IsEmailVerified = true
	require.NoError(t, repo.Update(ctx, alice))
	got, err = repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, got.IsEmailVerified)

	require.NoError(t, repo.Delete(ctx, bob.ID))
	_, err = repo.GetByID(ctx, bob.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	// Deleting and updating missing ids is silently ignored.
	require.NoError(t, repo.Delete(ctx, 99))
	require.NoError(t, repo.Update(ctx, &entity.User{ID: 99, Name: "ghost"}))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepositoryReusesFreedIDs(t *testing.T) {
	ctx := context.Background()
	repo, err := NewUserRepository(testConfig(t))
	require.NoError(t, err)

	first := &entity.User{Name: "First", Email: "first@example.com"}
	second := &entity.User{Name: "Second", Email: "second@example.com"}
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	// Ids derive from the current max, so removing the last record frees
	// its id for the next insert.
	require.NoError(t, repo.Delete(ctx, second.ID))

	third := &entity.User{Name: "Third", Email: "third@example.com"}
	require.NoError(t, repo.Add(ctx, third))
	assert.Equal(t, second.ID, third.ID)
}

func TestNoteRepositoryScopesToOwner(t *testing.T) {
	ctx := context.Background()
	repo, err := NewNoteRepository(testConfig(t))
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, &entity.Note{Text: "mine", UserID: 1}))
	require.NoError(t, repo.Add(ctx, &entity.Note{Text: "theirs", UserID: 2}))
	require.NoError(t, repo.Add(ctx, &entity.Note{Text: "also mine", UserID: 1}))

	mine, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "mine", mine[0].Text)
	assert.Equal(t, "also mine", mine[1].Text)
	assert.False(t, mine[0].CreatedAt.IsZero())

	empty, err := repo.ListByUser(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHabitRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := NewHabitRepository(testConfig(t))
	require.NoError(t, err)

	habit := &entity.Habit{
		Name:      "Stretch",
		Frequency: entity.FrequencyDaily,
		UserID:    7,
	}
	require.NoError(t, repo.Add(ctx, habit))
	require.Equal(t, 1, habit.ID)

	got, err := repo.GetByID(ctx, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stretch", got.Name)

	habits, err := repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, habits, 1)

	require.NoError(t, repo.Delete(ctx, habit.ID))
	_, err = repo.GetByID(ctx, habit.ID)
	assert.ErrorIs(t, err, repository.ErrHabitNotFound)
}

func TestLocationRepositorySeedCountries(t *testing.T) {
	ctx := context.Background()
	repo, err := NewLocationRepository(testConfig(t))
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, &entity.Location{
		Name: "Norway",
		Type: entity.LocationTypeCountry,
	}))
	require.NoError(t, repo.Add(ctx, &entity.Location{
		Name: "Oslo",
		Type: entity.LocationTypeCity,
	}))

	added, err := repo.SeedCountries(ctx, []entity.Location{
		{Name: "norway", CountryCode: "NO"},
		{Name: "Sweden", CountryCode: "SE"},
		{Name: "Finland", CountryCode: "FI"},
		{Name: "sweden", CountryCode: "SE"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	locations, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 4)
	assert.Equal(t, "Sweden", locations[2].Name)
	assert.Equal(t, entity.LocationTypeCountry, locations[2].Type)
	assert.Equal(t, 3, locations[2].ID)
	assert.Equal(t, "Finland", locations[3].Name)

	// A city named like a country does not block seeding that country.
	added, err = repo.SeedCountries(ctx, []entity.Location{{Name: "Oslo", CountryCode: "XX"}})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}
