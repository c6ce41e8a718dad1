package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/pkg/errors"

	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/domain/entity"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/domain/repository"
	"crewdesk/internal/usecase"
)

const recentEmployeeLimit = 5

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	employees repository.EmployeeRepository
	users     repository.UserRepository
	notes     repository.NoteRepository
	habits    repository.HabitRepository
	logger    *slog.Logger

	now func() time.Time
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	employees repository.EmployeeRepository,
	users repository.UserRepository,
	notes repository.NoteRepository,
	habits repository.HabitRepository,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		employees: employees,
		users:     users,
		notes:     notes,
		habits:    habits,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Overview assembles the dashboard landing payload.
func (srv *dashboardService) Overview(ctx context.Context, userID int) (*usecase.Overview, error) {
	employees, err := srv.employees.GetAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "list employees")
	}
	users, err := srv.users.GetAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "list users")
	}
	notes, err := srv.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "list notes")
	}
	habits, err := srv.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "list habits")
	}

	recent := make([]entity.Employee, len(employees))
	copy(recent, employees)
	sort.Slice(recent, func(i, j int) bool { return recent[i].ID > recent[j].ID })
	if len(recent) > recentEmployeeLimit {
		recent = recent[:recentEmployeeLimit]
	}

	views := make([]usecase.HabitView, 0, len(habits))
	for _, habit := range habits {
		views = append(views, srv.habitView(habit))
	}

	return &usecase.Overview{
		EmployeeCount:   len(employees),
		UserCount:       len(users),
		RecentEmployees: recent,
		Notes:           notes,
		Habits:          views,
	}, nil
}

func (srv *dashboardService) AddNote(ctx context.Context, userID int, input usecase.AddNoteInput) (*entity.Note, error) {
	note := &entity.Note{
		Text:      input.Text,
		CreatedAt: srv.now(),
		UserID:    userID,
	}
	if err := srv.notes.Add(ctx, note); err != nil {
		return nil, domainerrors.NewStorageError(err, "add note")
	}

	srv.log(ctx).Info("note added", slog.Int("note_id", note.ID), slog.Int("user_id", userID))

	return note, nil
}

func (srv *dashboardService) UpdateNote(ctx context.Context, userID, noteID int, input usecase.UpdateNoteInput) (*entity.Note, error) {
	note, err := srv.ownedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	note.Text = input.Text
	if err := srv.notes.Update(ctx, note); err != nil {
		return nil, domainerrors.NewStorageError(err, "update note")
	}

	return note, nil
}

func (srv *dashboardService) DeleteNote(ctx context.Context, userID, noteID int) error {
	if _, err := srv.ownedNote(ctx, userID, noteID); err != nil {
		return err
	}
	if err := srv.notes.Delete(ctx, noteID); err != nil {
		return domainerrors.NewStorageError(err, "delete note")
	}

	return nil
}

func (srv *dashboardService) AddHabit(ctx context.Context, userID int, input usecase.AddHabitInput) (*usecase.HabitView, error) {
	start := input.StartDate
	if start.IsZero() {
		start = srv.now()
	}

	habit := &entity.Habit{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Frequency:   input.Frequency,
		CustomDays:  input.CustomDays,
		StartDate:   start,
		CreatedAt:   srv.now(),
	}
	if err := srv.habits.Add(ctx, habit); err != nil {
		return nil, domainerrors.NewStorageError(err, "add habit")
	}

	srv.log(ctx).Info("habit added", slog.Int("habit_id", habit.ID), slog.Int("user_id", userID))

	view := srv.habitView(*habit)

	return &view, nil
}

// ToggleHabit flips the completion state of one calendar day.
func (srv *dashboardService) ToggleHabit(ctx context.Context, userID, habitID int, input usecase.ToggleHabitInput) (*usecase.HabitView, error) {
	habit, err := srv.ownedHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	day := input.Date
	if day.IsZero() {
		day = srv.now()
	}

	if habit.IsCompletedOn(day) {
		kept := habit.CompletedDates[:0]
		for _, d := range habit.CompletedDates {
			if !sameCalendarDay(d, day) {
				kept = append(kept, d)
			}
		}
		habit.CompletedDates = kept
	} else {
		habit.CompletedDates = append(habit.CompletedDates, day)
	}

	if err := srv.habits.Update(ctx, habit); err != nil {
		return nil, domainerrors.NewStorageError(err, "update habit")
	}

	view := srv.habitView(*habit)

	return &view, nil
}

func (srv *dashboardService) DeleteHabit(ctx context.Context, userID, habitID int) error {
	if _, err := srv.ownedHabit(ctx, userID, habitID); err != nil {
		return err
	}
	if err := srv.habits.Delete(ctx, habitID); err != nil {
		return domainerrors.NewStorageError(err, "delete habit")
	}

	return nil
}

func (srv *dashboardService) habitView(habit entity.Habit) usecase.HabitView {
	now := srv.now()

	return usecase.HabitView{
		Habit:          habit,
		Streak:         habit.StreakAsOf(now),
		CompletedToday: habit.IsCompletedOn(now),
	}
}

func (srv *dashboardService) ownedNote(ctx context.Context, userID, noteID int) (*entity.Note, error) {
	note, err := srv.notes.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNoteNotFound
		}

		return nil, domainerrors.NewStorageError(err, "get note")
	}
	if note.UserID != userID {
		return nil, domainerrors.ErrNotOwner
	}

	return note, nil
}

func (srv *dashboardService) ownedHabit(ctx context.Context, userID, habitID int) (*entity.Habit, error) {
	habit, err := srv.habits.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, domainerrors.ErrHabitNotFound
		}

		return nil, domainerrors.NewStorageError(err, "get habit")
	}
	if habit.UserID != userID {
		return nil, domainerrors.ErrNotOwner
	}

	return habit, nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
