// Package errors defines the application error taxonomy: errors that
// carry an HTTP status, a stable business error code, and a message safe
// to show to the caller.
package errors

import (
	"net/http"

	"crewdesk/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error with detailed information attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account and authentication errors. Login deliberately distinguishes
	// an unknown email from a wrong password; this mirrors the original
	// system and is a known information-disclosure weakness.
	ErrEmailExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_EXISTS",
		"Email already exists.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_PASSWORD",
		"Incorrect password. You can reset it using the link below.",
		"",
	)

	ErrInvalidOtp = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OTP",
		"Invalid or expired OTP.",
		"",
	)

	ErrVerificationRequired = NewBaseError(
		http.StatusUnauthorized,
		"VERIFICATION_REQUIRED",
		"No pending verification found. Please sign up first.",
		"",
	)

	ErrEmailNotFound = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_FOUND",
		"Email not found.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required.",
		"",
	)

	// Resource errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrEmployeeNotFound = NewBaseError(
		http.StatusNotFound,
		"EMPLOYEE_NOT_FOUND",
		"Employee not found.",
		"",
	)

	ErrNoteNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTE_NOT_FOUND",
		"Note not found.",
		"",
	)

	ErrHabitNotFound = NewBaseError(
		http.StatusNotFound,
		"HABIT_NOT_FOUND",
		"Habit not found.",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found.",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"You do not have access to this item.",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// External service errors. Third-party failures degrade to an error
	// envelope rather than a hard failure.
	ErrNewsUnavailable = NewBaseError(
		http.StatusBadGateway,
		"NEWS_UNAVAILABLE",
		"News service request failed.",
		"",
	)

	ErrCountryImportFailed = NewBaseError(
		http.StatusBadGateway,
		"COUNTRY_IMPORT_FAILED",
		"Country import request failed.",
		"",
	)

	ErrNewsAPIKeyMissing = NewBaseError(
		http.StatusBadRequest,
		"NEWS_API_KEY_MISSING",
		"News API key is missing or invalid.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// NewStorageError creates a storage-related error with the cause attached.
func NewStorageError(err error, details string) AppError {
	return &BaseError{
		httpCode:  http.StatusInternalServerError,
		errorCode: "STORAGE_ERROR",
		message:   "Storage operation failed.",
		details:   details + ": " + err.Error(),
	}
}
