package jsonstore

import (
	"context"
	"path/filepath"

	"crewdesk/config"
	"crewdesk/internal/domain/entity"
	"crewdesk/internal/domain/repository"
)

// habitRepository implements repository.HabitRepository on a habits.json file.
type habitRepository struct {
	store *Store[entity.Habit]
}

// NewHabitRepository is the constructor for habitRepository.
func NewHabitRepository(cfg *config.Config) (repository.HabitRepository, error) {
	store, err := NewStore[entity.Habit](filepath.Join(cfg.Storage.DataDir, "habits.json"))
	if err != nil {
		return nil, err
	}

	return &habitRepository{store: store}, nil
}

func (repo *habitRepository) ListByUser(ctx context.Context, userID int) ([]entity.Habit, error) {
	habits, err := repo.store.Load()
	if err != nil {
		return nil, err
	}

	owned := make([]entity.Habit, 0, len(habits))
	for _, h := range habits {
		if h.UserID == userID {
			owned = append(owned, h)
		}
	}

	return owned, nil
}

func (repo *habitRepository) GetByID(ctx context.Context, id int) (*entity.Habit, error) {
	habits, err := repo.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID == id {
			return &habits[i], nil
		}
	}

	return nil, repository.ErrHabitNotFound
}

func (repo *habitRepository) Add(ctx context.Context, habit *entity.Habit) error {
	habits, err := repo.store.Load()
	if err != nil {
		return err
	}

	next := 1
	for _, h := range habits {
		if h.ID >= next {
			next = h.ID + 1
		}
	}
	habit.ID = next
	habits = append(habits, *habit)

	return repo.store.Save(habits)
}

func (repo *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	habits, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range habits {
		if habits[i].ID == habit.ID {
			habits[i] = *habit

			return repo.store.Save(habits)
		}
	}

	return nil
}

func (repo *habitRepository) Delete(ctx context.Context, id int) error {
	habits, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range habits {
		if habits[i].ID == id {
			habits = append(habits[:i], habits[i+1:]...)

			return repo.store.Save(habits)
		}
	}

	return nil
}
