package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewdesk/config"
	"crewdesk/internal/domain/repository"
	"crewdesk/internal/domain/service"
	"crewdesk/internal/infra/auth"
	"crewdesk/internal/infra/jsonstore"
)

// sentMail records one delivery made through the fake mailer.
type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer collects outgoing mail instead of delivering it.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})

	return nil
}

func (m *fakeMailer) last(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent)

	return m.sent[len(m.sent)-1]
}

// testDeps bundles the real flat-file repositories and supporting
// services every usecase test builds on.
type testDeps struct {
	cfg       *config.Config
	users     repository.UserRepository
	employees repository.EmployeeRepository
	notes     repository.NoteRepository
	habits    repository.HabitRepository
	locations repository.LocationRepository
	sessions  service.SessionService
	mailer    *fakeMailer
	logger    *slog.Logger
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DataDir = t.TempDir()
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTL = time.Hour
	cfg.BaseURL = "http://localhost:8080"

	users, err := jsonstore.NewUserRepository(cfg)
	require.NoError(t, err)
	employees, err := jsonstore.NewEmployeeRepository(cfg)
	require.NoError(t, err)
	notes, err := jsonstore.NewNoteRepository(cfg)
	require.NoError(t, err)
	habits, err := jsonstore.NewHabitRepository(cfg)
	require.NoError(t, err)
	locations, err := jsonstore.NewLocationRepository(cfg)
	require.NoError(t, err)
	sessions, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return &testDeps{
		cfg:       cfg,
		users:     users,
		employees: employees,
		notes:     notes,
		habits:    habits,
		locations: locations,
		sessions:  sessions,
		mailer:    &fakeMailer{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
