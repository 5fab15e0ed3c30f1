// Package errors defines the uniform application error shape surfaced to the
// delivery boundary, plus the predefined error values the use cases return.
package errors

import (
	"net/http"

	"gobarber/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
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
	// Authentication-related errors.
	// The same message covers both an unknown email and a wrong password so
	// the response never reveals which of the two was incorrect.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email/password combination",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_IN_USE",
		"Email already in use",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrOldPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"OLD_PASSWORD_REQUIRED",
		"You need to inform the old password to set a new password",
		"",
	)

	ErrOldPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"OLD_PASSWORD_MISMATCH",
		"Old password does not match",
		"",
	)

	// Appointment-related errors
	ErrSelfBooking = NewBaseError(
		http.StatusBadRequest,
		"SELF_BOOKING",
		"You can't create an appointment with yourself",
		"",
	)

	ErrPastAppointment = NewBaseError(
		http.StatusBadRequest,
		"PAST_APPOINTMENT",
		"You can't create an appointment on a past date",
		"",
	)

	ErrOutsideBusinessHours = NewBaseError(
		http.StatusBadRequest,
		"OUTSIDE_BUSINESS_HOURS",
		"You can only create appointments between 8am and 5pm",
		"",
	)

	ErrSlotTaken = NewBaseError(
		http.StatusConflict,
		"APPOINTMENT_SLOT_TAKEN",
		"This appointment is already booked",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
