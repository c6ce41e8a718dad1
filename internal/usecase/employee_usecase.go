package usecase

import (
	"context"

	"crewdesk/internal/domain/entity"
)

// CreateEmployeeInput defines the data required to create an employee.
type CreateEmployeeInput struct {
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"required,gt=0"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateEmployeeInput defines the data accepted when updating an employee.
type UpdateEmployeeInput struct {
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"required,gt=0"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmployeeUsecase defines the interface for employee directory operations.
type EmployeeUsecase interface {
	List(ctx context.Context) ([]entity.Employee, error)
	Get(ctx context.Context, id int) (*entity.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*entity.Employee, error)
	Update(ctx context.Context, id int, input UpdateEmployeeInput) (*entity.Employee, error)
	Delete(ctx context.Context, id int) error
}
