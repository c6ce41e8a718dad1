package repository

import (
	"context"
	"errors"

	"crewdesk/internal/domain/entity"
)

// ErrEmployeeNotFound is returned when an employee record is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]entity.Employee, error)

	// GetByID retrieves a single employee by id, or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id int) (*entity.Employee, error)

	// GetByEmail retrieves a single employee by email, or ErrEmployeeNotFound.
	// Used by the signup flow to decide whether a verified user still needs
	// an employee record mirrored for them.
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// Add persists a new employee and assigns it the next integer id.
	Add(ctx context.Context, employee *entity.Employee) error

	// Update replaces the stored employee with the same id; no-op when absent.
	Update(ctx context.Context, employee *entity.Employee) error

	// Delete removes the employee with the given id; no-op when absent.
	Delete(ctx context.Context, id int) error
}
