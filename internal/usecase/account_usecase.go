// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"crewdesk/internal/domain/service"
)

// --- Input DTOs ---

// SignupInput defines the data required to sign up a new account.
type SignupInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// VerifyEmailInput carries the pending-verification token from the
// signup cookie together with the OTP the user typed in.
type VerifyEmailInput struct {
	PendingToken string
	Otp          string `json:"otp" validate:"required,len=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordInput identifies the account to send a reset link to.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput carries the emailed reset token and the new password.
type ResetPasswordInput struct {
	Email           string `json:"email" validate:"required,email"`
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// --- Output DTOs ---

// SignupOutput returns the pending-verification token the delivery layer
// sets as a cookie, marking the browser as mid-way through OTP
// verification for this email.
type SignupOutput struct {
	Email        string
	PendingToken string
}

// SessionOutput returns a signed session token and the identity it
// carries after a successful login or verification.
type SessionOutput struct {
	Token    string
	Identity service.Identity
}

// AccountUsecase defines the interface for the self-service account
// workflows. This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// Signup registers a new unverified account and emails its OTP. An
	// existing unverified account with the same email is overwritten; a
	// verified one is a conflict.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// VerifyEmail checks the OTP for the pending signup, marks the
	// account verified, and opens a session. The verified user is also
	// mirrored into the employee directory when absent.
	VerifyEmail(ctx context.Context, input VerifyEmailInput) (*SessionOutput, error)

	// Login checks the credentials and opens a session.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Authenticate verifies a session token and re-checks that its user
	// still exists. Used by the auth middleware on every request.
	Authenticate(ctx context.Context, sessionToken string) (*service.Identity, error)

	// ForgotPassword issues a reset token and emails a reset link.
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error

	// ResetPassword sets a new password when the reset token matches and
	// has not expired.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
