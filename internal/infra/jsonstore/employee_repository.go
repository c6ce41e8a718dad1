package jsonstore

import (
	"context"
	"path/filepath"

	"crewdesk/config"
	"crewdesk/internal/domain/entity"
	"crewdesk/internal/domain/repository"
)

// employeeRepository implements repository.EmployeeRepository on an
// employees.json file.
type employeeRepository struct {
	store *Store[entity.Employee]
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(cfg *config.Config) (repository.EmployeeRepository, error) {
	store, err := NewStore[entity.Employee](filepath.Join(cfg.Storage.DataDir, "employees.json"))
	if err != nil {
		return nil, err
	}

	return &employeeRepository{store: store}, nil
}

func (repo *employeeRepository) GetAll(ctx context.Context) ([]entity.Employee, error) {
	return repo.store.Load()
}

func (repo *employeeRepository) GetByID(ctx context.Context, id int) (*entity.Employee, error) {
	employees, err := repo.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].ID == id {
			return &employees[i], nil
		}
	}

	return nil, repository.ErrEmployeeNotFound
}

func (repo *employeeRepository) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	employees, err := repo.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].Email == email {
			return &employees[i], nil
		}
	}

	return nil, repository.ErrEmployeeNotFound
}

func (repo *employeeRepository) Add(ctx context.Context, employee *entity.Employee) error {
	employees, err := repo.store.Load()
	if err != nil {
		return err
	}

	next := 1
	for _, e := range employees {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	employee.ID = next
	employees = append(employees, *employee)

	return repo.store.Save(employees)
}

func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	employees, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range employees {
		if employees[i].ID == employee.ID {
			employees[i] = *employee

			return repo.store.Save(employees)
		}
	}

	return nil
}

func (repo *employeeRepository) Delete(ctx context.Context, id int) error {
	employees, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range employees {
		if employees[i].ID == id {
			employees = append(employees[:i], employees[i+1:]...)

			return repo.store.Save(employees)
		}
	}

	return nil
}
