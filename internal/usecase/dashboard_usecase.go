package usecase

import (
	"context"
	"time"

	"crewdesk/internal/domain/entity"
)

// AddNoteInput defines the data required to add a dashboard note.
type AddNoteInput struct {
	Text string `json:"text" validate:"required"`
}

// UpdateNoteInput defines the data accepted when editing a note.
type UpdateNoteInput struct {
	Text string `json:"text" validate:"required"`
}

// AddHabitInput defines the data required to add a habit.
type AddHabitInput struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Frequency   string         `json:"frequency" validate:"required,oneof=Daily Custom"`
	CustomDays  []time.Weekday `json:"customDays" validate:"omitempty,dive,min=0,max=6"`
	StartDate   time.Time      `json:"startDate"`
}

// ToggleHabitInput identifies the calendar day whose completion flips.
type ToggleHabitInput struct {
	Date time.Time `json:"date"`
}

// HabitView is a habit together with its derived tracking state.
type HabitView struct {
	entity.Habit
	Streak         int  `json:"streak"`
	CompletedToday bool `json:"completedToday"`
}

// Overview is the dashboard landing payload: directory totals, the most
// recently added employees, and the signed-in user's notes and habits.
type Overview struct {
	EmployeeCount   int               `json:"employeeCount"`
	UserCount       int               `json:"userCount"`
	RecentEmployees []entity.Employee `json:"recentEmployees"`
	Notes           []entity.Note     `json:"notes"`
	Habits          []HabitView       `json:"habits"`
}

// DashboardUsecase defines the interface for the signed-in dashboard:
// the overview plus owner-scoped notes and habits.
type DashboardUsecase interface {
	Overview(ctx context.Context, userID int) (*Overview, error)

	AddNote(ctx context.Context, userID int, input AddNoteInput) (*entity.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int, input UpdateNoteInput) (*entity.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int) error

	AddHabit(ctx context.Context, userID int, input AddHabitInput) (*HabitView, error)
	ToggleHabit(ctx context.Context, userID, habitID int, input ToggleHabitInput) (*HabitView, error)
	DeleteHabit(ctx context.Context, userID, habitID int) error
}
