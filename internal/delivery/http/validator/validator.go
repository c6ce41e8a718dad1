// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "crewdesk/internal/domain/errors"
)

// Validator wraps a shared validate instance.
type Validator struct {
	validate *playground.Validate
}

// New builds the echo validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps failures onto the validation
// error so the error middleware renders a 400 envelope.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
