package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/entity"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/domain/repository"
	"crewdesk/internal/usecase"
)

func createTestUserService(t *testing.T) (*userService, *testDeps) {
	t.Helper()

	deps := newTestDeps(t)
	svc := NewUserService(deps.users, deps.sessions, deps.mailer, deps.logger).(*userService)
	svc.newOtp = func() string { return "123456" }

	return svc, deps
}

func TestUserService_BeginCreate_PersistsNothing(t *testing.T) {
	svc, deps := createTestUserService(t)
	ctx := context.Background()

	out, err := svc.BeginCreate(ctx, usecase.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.PendingToken)

	users, err := deps.users.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	mail := deps.mailer.last(t)
	assert.Equal(t, "bob@example.com", mail.To)
	assert.Contains(t, mail.Body, "123456")
}

func TestUserService_BeginCreate_ExistingEmailConflicts(t *testing.T) {
	svc, deps := createTestUserService(t)
	ctx := context.Background()

	require.NoError(t, deps.users.Add(ctx, &entity.User{Email: "bob@example.com"}))

	_, err := svc.BeginCreate(ctx, usecase.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestUserService_ConfirmCreate(t *testing.T) {
	svc, deps := createTestUserService(t)
	ctx := context.Background()

	out, err := svc.BeginCreate(ctx, usecase.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.ConfirmCreate(ctx, usecase.ConfirmUserInput{
		PendingToken: out.PendingToken, Otp: "000000",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOtp)

	user, err := svc.ConfirmCreate(ctx, usecase.ConfirmUserInput{
		PendingToken: out.PendingToken, Otp: "123456",
	})
	require.NoError(t, err)
	assert.True(t, user.IsEmailVerified)
	assert.Equal(t, 1, user.ID)

	stored, err := deps.users.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "secret", stored.Password)
}

func TestUserService_ConfirmCreate_ExpiredOtp(t *testing.T) {
	svc, _ := createTestUserService(t)
	ctx := context.Background()

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	out, err := svc.BeginCreate(ctx, usecase.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret",
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(otpTTL) }
	_, err = svc.ConfirmCreate(ctx, usecase.ConfirmUserInput{
		PendingToken: out.PendingToken, Otp: "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOtp)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	svc, deps := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{Name: "Bob", Email: "bob@example.com", Password: "secret"}
	require.NoError(t, deps.users.Add(ctx, user))

	updated, err := svc.Update(ctx, user.ID, usecase.UpdateUserInput{
		Name: "Bobby", Email: "bobby@example.com", Password: "newpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bobby", updated.Name)

	_, err = svc.Update(ctx, 99, usecase.UpdateUserInput{
		Name: "Ghost", Email: "ghost@example.com", Password: "x",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	require.NoError(t, svc.Delete(ctx, user.ID))
	_, err = deps.users.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, user.ID), domainerrors.ErrUserNotFound)
}
