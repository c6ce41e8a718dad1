package jsonstore

import (
	"context"
	"path/filepath"

	"crewdesk/config"
	"crewdesk/internal/domain/entity"
	"crewdesk/internal/domain/repository"
)

// userRepository implements repository.UserRepository on a users.json file.
type userRepository struct {
	store *Store[entity.User]
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(cfg *config.Config) (repository.UserRepository, error) {
	store, err := NewStore[entity.User](filepath.Join(cfg.Storage.DataDir, "users.json"))
	if err != nil {
		return nil, err
	}

	return &userRepository{store: store}, nil
}

func (repo *userRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	return repo.store.Load()
}

func (repo *userRepository) GetByID(ctx context.Context, id int) (*entity.User, error) {
	users, err := repo.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := repo.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Add(ctx context.Context, user *entity.User) error {
	users, err := repo.store.Load()
	if err != nil {
		return err
	}

	user.ID = NextID(userIDs(users))
	users = append(users, *user)

	return repo.store.Save(users)
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	users, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user

			return repo.store.Save(users)
		}
	}

	// Updating a missing id is a silent no-op.
	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id int) error {
	users, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)

			return repo.store.Save(users)
		}
	}

	return nil
}

func userIDs(users []entity.User) []int {
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	return ids
}
