package jsonstore

import (
	"context"
	"path/filepath"
	"time"

	"crewdesk/config"
	"crewdesk/internal/domain/entity"
	"crewdesk/internal/domain/repository"
)

// noteRepository implements repository.NoteRepository on a notes.json file.
type noteRepository struct {
	store *Store[entity.Note]
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(cfg *config.Config) (repository.NoteRepository, error) {
	store, err := NewStore[entity.Note](filepath.Join(cfg.Storage.DataDir, "notes.json"))
	if err != nil {
		return nil, err
	}

	return &noteRepository{store: store}, nil
}

func (repo *noteRepository) ListByUser(ctx context.Context, userID int) ([]entity.Note, error) {
	notes, err := repo.store.Load()
	if err != nil {
		return nil, err
	}

	owned := make([]entity.Note, 0, len(notes))
	for _, n := range notes {
		if n.UserID == userID {
			owned = append(owned, n)
		}
	}

	return owned, nil
}

func (repo *noteRepository) GetByID(ctx context.Context, id int) (*entity.Note, error) {
	notes, err := repo.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID == id {
			return &notes[i], nil
		}
	}

	return nil, repository.ErrNoteNotFound
}

func (repo *noteRepository) Add(ctx context.Context, note *entity.Note) error {
	notes, err := repo.store.Load()
	if err != nil {
		return err
	}

	next := 1
	for _, n := range notes {
		if n.ID >= next {
			next = n.ID + 1
		}
	}
	note.ID = next
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	notes = append(notes, *note)

	return repo.store.Save(notes)
}

func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	notes, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID == note.ID {
			notes[i] = *note

			return repo.store.Save(notes)
		}
	}

	return nil
}

func (repo *noteRepository) Delete(ctx context.Context, id int) error {
	notes, err := repo.store.Load()
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID == id {
			notes = append(notes[:i], notes[i+1:]...)

			return repo.store.Save(notes)
		}
	}

	return nil
}
