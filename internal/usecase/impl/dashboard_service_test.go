package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/entity"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/usecase"
)

func createTestDashboardService(t *testing.T) (*dashboardService, *testDeps) {
	t.Helper()

	deps := newTestDeps(t)
	svc := NewDashboardService(
		deps.employees, deps.users, deps.notes, deps.habits, deps.logger,
	).(*dashboardService)

	return svc, deps
}

func TestDashboardService_Overview(t *testing.T) {
	svc, deps := createTestDashboardService(t)
	ctx := context.Background()

	for i := range 7 {
		require.NoError(t, deps.employees.Add(ctx, &entity.Employee{
			Name: "Employee", Age: 30 + i, Email: "e@example.com",
		}))
	}
	require.NoError(t, deps.users.Add(ctx, &entity.User{Name: "Alice", Email: "alice@example.com"}))
	require.NoError(t, deps.notes.Add(ctx, &entity.Note{Text: "mine", UserID: 1}))
	require.NoError(t, deps.notes.Add(ctx, &entity.Note{Text: "theirs", UserID: 2}))
	require.NoError(t, deps.habits.Add(ctx, &entity.Habit{
		Name: "Run", Frequency: entity.FrequencyDaily, UserID: 1,
		StartDate:      time.Now().AddDate(0, 0, -3),
		CompletedDates: []time.Time{time.Now().AddDate(0, 0, -1), time.Now()},
	}))

	overview, err := svc.Overview(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, overview.EmployeeCount)
	assert.Equal(t, 1, overview.UserCount)

	// Most recent five employees, newest first.
	require.Len(t, overview.RecentEmployees, 5)
	assert.Equal(t, 7, overview.RecentEmployees[0].ID)
	assert.Equal(t, 3, overview.RecentEmployees[4].ID)

	require.Len(t, overview.Notes, 1)
	assert.Equal(t, "mine", overview.Notes[0].Text)

	require.Len(t, overview.Habits, 1)
	assert.Equal(t, 2, overview.Habits[0].Streak)
	assert.True(t, overview.Habits[0].CompletedToday)
}

func TestDashboardService_NotesAreOwnerScoped(t *testing.T) {
	svc, _ := createTestDashboardService(t)
	ctx := context.Background()

	note, err := svc.AddNote(ctx, 1, usecase.AddNoteInput{Text: "remember"})
	require.NoError(t, err)
	assert.Equal(t, 1, note.UserID)
	assert.False(t, note.CreatedAt.IsZero())

	_, err = svc.UpdateNote(ctx, 2, note.ID, usecase.UpdateNoteInput{Text: "stolen"})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)

	err = svc.DeleteNote(ctx, 2, note.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)

	updated, err := svc.UpdateNote(ctx, 1, note.ID, usecase.UpdateNoteInput{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	require.NoError(t, svc.DeleteNote(ctx, 1, note.ID))
	_, err = svc.UpdateNote(ctx, 1, note.ID, usecase.UpdateNoteInput{Text: "gone"})
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestDashboardService_AddHabitDefaultsStartDate(t *testing.T) {
	svc, _ := createTestDashboardService(t)
	ctx := context.Background()

	fixed := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	view, err := svc.AddHabit(ctx, 1, usecase.AddHabitInput{
		Name: "Read", Frequency: entity.FrequencyDaily,
	})
	require.NoError(t, err)
	assert.Equal(t, fixed, view.StartDate)
	assert.Equal(t, 0, view.Streak)
	assert.False(t, view.CompletedToday)
}

func TestDashboardService_ToggleHabit(t *testing.T) {
	svc, _ := createTestDashboardService(t)
	ctx := context.Background()

	fixed := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	view, err := svc.AddHabit(ctx, 1, usecase.AddHabitInput{
		Name: "Read", Frequency: entity.FrequencyDaily,
	})
	require.NoError(t, err)

	// First toggle marks today complete.
	view, err = svc.ToggleHabit(ctx, 1, view.ID, usecase.ToggleHabitInput{})
	require.NoError(t, err)
	assert.True(t, view.CompletedToday)
	assert.Equal(t, 1, view.Streak)

	// Second toggle of the same day undoes it.
	view, err = svc.ToggleHabit(ctx, 1, view.ID, usecase.ToggleHabitInput{Date: fixed})
	require.NoError(t, err)
	assert.False(t, view.CompletedToday)
	assert.Equal(t, 0, view.Streak)

	_, err = svc.ToggleHabit(ctx, 2, view.ID, usecase.ToggleHabitInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)

	_, err = svc.ToggleHabit(ctx, 1, 99, usecase.ToggleHabitInput{})
	assert.ErrorIs(t, err, domainerrors.ErrHabitNotFound)
}

func TestDashboardService_DeleteHabit(t *testing.T) {
	svc, _ := createTestDashboardService(t)
	ctx := context.Background()

	view, err := svc.AddHabit(ctx, 1, usecase.AddHabitInput{
		Name: "Read", Frequency: entity.FrequencyDaily,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteHabit(ctx, 2, view.ID), domainerrors.ErrNotOwner)
	require.NoError(t, svc.DeleteHabit(ctx, 1, view.ID))
	assert.ErrorIs(t, svc.DeleteHabit(ctx, 1, view.ID), domainerrors.ErrHabitNotFound)
}
