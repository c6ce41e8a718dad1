package usecase

import (
	"context"

	"crewdesk/internal/domain/entity"
)

// CreateUserInput defines the data required to create a user through the
// admin surface. Creation is OTP-gated: the record is only persisted
// after the OTP emailed to the new address is confirmed.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// ConfirmUserInput carries the pending-user token and the OTP.
type ConfirmUserInput struct {
	PendingToken string
	Otp          string `json:"otp" validate:"required,len=6"`
}

// UpdateUserInput defines the data accepted when updating a user.
type UpdateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// BeginCreateOutput returns the pending-user token the delivery layer
// sets as a cookie while the OTP is in flight.
type BeginCreateOutput struct {
	Email        string
	PendingToken string
}

// UserUsecase defines the interface for the user admin surface.
type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id int) (*entity.User, error)

	// BeginCreate validates the input, emails an OTP to the new address,
	// and returns a signed token holding the pending user. Nothing is
	// persisted yet.
	BeginCreate(ctx context.Context, input CreateUserInput) (*BeginCreateOutput, error)

	// ConfirmCreate checks the OTP against the pending token and persists
	// the user, already verified.
	ConfirmCreate(ctx context.Context, input ConfirmUserInput) (*entity.User, error)

	Update(ctx context.Context, id int, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id int) error
}
