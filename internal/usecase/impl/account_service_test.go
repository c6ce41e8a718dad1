package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/entity"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/usecase"
)

func createTestAccountService(t *testing.T) (*accountService, *testDeps) {
	t.Helper()

	deps := newTestDeps(t)
	svc := NewAccountService(
		deps.users, deps.employees, deps.sessions, deps.mailer, deps.cfg, deps.logger,
	).(*accountService)
	svc.newOtp = func() string { return "123456" }

	return svc, deps
}

func signupInput(email string) usecase.SignupInput {
	return usecase.SignupInput{
		Name:            "Alice",
		Email:           email,
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func TestAccountService_Signup_CreatesUnverifiedUser(t *testing.T) {
	svc, deps := createTestAccountService(t)
	ctx := context.Background()

	out, err := svc.Signup(ctx, signupInput("alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.Email)
	assert.NotEmpty(t, out.PendingToken)

	user, err := deps.users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, user.IsEmailVerified)
	assert.Equal(t, "123456", user.Otp)
	require.NotNil(t, user.OtpExpiry)

	mail := deps.mailer.last(t)
	assert.Equal(t, "alice@example.com", mail.To)
	assert.Contains(t, mail.Body, "123456")
}

func TestAccountService_Signup_VerifiedEmailConflicts(t *testing.T) {
	svc, deps := createTestAccountService(t)
	ctx := context.Background()

	require.NoError(t, deps.users.Add(ctx, &entity.User{
		Name: "Alice", Email: "alice@example.com", Password: "old", IsEmailVerified: true,
	}))

	_, err := svc.Signup(ctx, signupInput("alice@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestAccountService_Signup_UnverifiedEmailOverwritten(t *testing.T) {
	svc, deps := createTestAccountService(t)
	ctx := context.Background()

	stale := time.Now().Add(-time.Hour)
	require.NoError(t, deps.users.Add(ctx, &entity.User{
		Name: "Old Alice", Email: "alice@example.com", Password: "old",
		Otp: "999999", OtpExpiry: &stale,
	}))

	_, err := svc.Signup(ctx, signupInput("alice@example.com"))
	require.NoError(t, err)

	user, err := deps.users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "secret", user.Password)
	assert.Equal(t, "123456", user.Otp)
	assert.True(t, user.OtpExpiry.After(time.Now()))

	users, err := deps.users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_VerifyEmail_Success(t *testing.T) {
	svc, deps := createTestAccountService(t)
	ctx := context.Background()

	out, err := svc.Signup(ctx, signupInput("alice@example.com"))
	require.NoError(t, err)

	session, err := svc.VerifyEmail(ctx, usecase.VerifyEmailInput{
		PendingToken: out.PendingToken,
		Otp:          "123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "alice@example.com", session.Identity.Email)

	user, err := deps.users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, user.IsEmailVerified)
	assert.Empty(t, user.Otp)
	assert.Nil(t, user.OtpExpiry)

	// The verified user is mirrored into the employee directory.
	employee, err := deps.employees.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", employee.Name)
}

func TestAccountService_VerifyEmail_DoesNotDuplicateEmployee(t *testing.T) {
	svc, deps := createTestAccountService(t)
	ctx := context.Background()

	require.NoError(t, deps.employees.Add(ctx, &entity.Employee{
		Name: "Existing", Email: "alice@example.com",
	}))

	out, err := svc.Signup(ctx, signupInput("alice@example.com"))
	require.NoError(t, err)
	_, err = svc.VerifyEmail(ctx, usecase.VerifyEmailInput{PendingToken: out.PendingToken, Otp: "123456"})
	require.NoError(t, err)

	employees, err := deps.employees.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
	assert.Equal(t, "Existing", employees[0].Name)
}

func TestAccountService_VerifyEmail_WrongOtp(t *testing.T) {
	svc, _ := createTestAccountService(t)
	ctx := context.Background()

	out, err := svc.Signup(ctx, signupInput("alice@example.com"))
	require.NoError(t, err)

	_, err = svc.VerifyEmail(ctx, usecase.VerifyEmailInput{PendingToken: out.PendingToken, Otp: "654321"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOtp)
}

func TestAccountService_VerifyEmail_ExpiryIsStrict(t *testing.T) {
	svc, _ := createTestAccountService(t)
	ctx := context.Background()

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	out, err := svc.Signup(ctx, signupInput("alice@example.com"))
	require.NoError(t, err)

	// A code presented at the exact expiry instant is rejected.
	svc.now = func() time.Time { return issued.Add(otpTTL) }
	_, err = svc.VerifyEmail(ctx, usecase.VerifyEmailInput{PendingToken: out.PendingToken, Otp: "123456"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOtp)
}

func TestAccountService_VerifyEmail_NoPendingToken(t *testing.T) {
	svc, _ := createTestAccountService(t)

	_, err := svc.VerifyEmail(context.Background(), usecase.VerifyEmailInput{
		PendingToken: "not-a-token",
		Otp:          "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrVerificationRequired)
}

func TestAccountService_Login(t *testing.T) {
	svc, deps := createTestAccountService(t)
	ctx := context.Background()

	require.NoError(t, deps.users.Add(ctx, &entity.User{
		Name: "Alice", Email: "alice@example.com", Password: "secret", IsEmailVerified: true,
	}))

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", out.Identity.Name)

	// Unknown email and wrong password answer differently.
	_, err = svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
}

func TestAccountService_Authenticate_ForcesSignOutForDeletedUser(t *testing.T) {
	svc, deps := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{Name: "Alice", Email: "alice@example.com", Password: "secret", IsEmailVerified: true}
	require.NoError(t, deps.users.Add(ctx, user))

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	identity, err := svc.Authenticate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)

	require.NoError(t, deps.users.Delete(ctx, user.ID))

	_, err = svc.Authenticate(ctx, out.Token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAccountService_Authenticate_RejectsGarbageToken(t *testing.T) {
	svc, _ := createTestAccountService(t)

	_, err := svc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAccountService_ForgotAndResetPassword(t *testing.T) {
	svc, deps := createTestAccountService(t)
	ctx := context.Background()

	require.NoError(t, deps.users.Add(ctx, &entity.User{
		Name: "Alice", Email: "alice@example.com", Password: "secret", IsEmailVerified: true,
	}))

	err := svc.ForgotPassword(ctx, usecase.ForgotPasswordInput{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotFound)

	require.NoError(t, svc.ForgotPassword(ctx, usecase.ForgotPasswordInput{Email: "alice@example.com"}))

	user, err := deps.users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, user.Otp)
	assert.Contains(t, deps.mailer.last(t).Body, user.Otp)

	err = svc.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email: "alice@example.com", Token: "wrong-token",
		Password: "newpass", ConfirmPassword: "newpass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOtp)

	require.NoError(t, svc.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email: "alice@example.com", Token: user.Otp,
		Password: "newpass", ConfirmPassword: "newpass",
	}))

	updated, err := deps.users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "newpass", updated.Password)
	assert.Empty(t, updated.Otp)

	// The token is single use.
	err = svc.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email: "alice@example.com", Token: user.Otp,
		Password: "again", ConfirmPassword: "again",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOtp)
}
