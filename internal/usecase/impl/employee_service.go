package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/domain/entity"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/domain/repository"
	"crewdesk/internal/usecase"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employees repository.EmployeeRepository
	logger    *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(
	employees repository.EmployeeRepository,
	logger *slog.Logger,
) usecase.EmployeeUsecase {
	return &employeeService{employees: employees, logger: logger}
}

func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *employeeService) List(ctx context.Context) ([]entity.Employee, error) {
	employees, err := srv.employees.GetAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "list employees")
	}

	return employees, nil
}

func (srv *employeeService) Get(ctx context.Context, id int) (*entity.Employee, error) {
	employee, err := srv.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrEmployeeNotFound
		}

		return nil, domainerrors.NewStorageError(err, "get employee")
	}

	return employee, nil
}

func (srv *employeeService) Create(ctx context.Context, input usecase.CreateEmployeeInput) (*entity.Employee, error) {
	employee := &entity.Employee{
		Name:     input.Name,
		Age:      input.Age,
		Email:    input.Email,
		Password: input.Password,
	}
	if err := srv.employees.Add(ctx, employee); err != nil {
		return nil, domainerrors.NewStorageError(err, "create employee")
	}

	srv.log(ctx).Info("employee created", slog.Int("employee_id", employee.ID))

	return employee, nil
}

func (srv *employeeService) Update(ctx context.Context, id int, input usecase.UpdateEmployeeInput) (*entity.Employee, error) {
	existing, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Age = input.Age
	existing.Email = input.Email
	existing.Password = input.Password
	if err := srv.employees.Update(ctx, existing); err != nil {
		return nil, domainerrors.NewStorageError(err, "update employee")
	}

	return existing, nil
}

func (srv *employeeService) Delete(ctx context.Context, id int) error {
	if _, err := srv.Get(ctx, id); err != nil {
		return err
	}
	if err := srv.employees.Delete(ctx, id); err != nil {
		return domainerrors.NewStorageError(err, "delete employee")
	}

	srv.log(ctx).Info("employee deleted", slog.Int("employee_id", id))

	return nil
}
