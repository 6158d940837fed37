package errors

import (
	"net/http"

	"itinerary/internal/errors"
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

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches BaseErrors by business code so copies made by WithDetails still
// compare equal to the catalogue entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Trip-related errors
	ErrTripNotFound = NewBaseError(
		http.StatusNotFound,
		"TRIP_NOT_FOUND",
		"Trip not found",
		"",
	)

	ErrInvalidTripStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRIP_STATUS",
		"Unknown trip status",
		"",
	)

	ErrTripStatusTransition = NewBaseError(
		http.StatusConflict,
		"TRIP_STATUS_TRANSITION_NOT_ALLOWED",
		"Trip status transition is not allowed",
		"",
	)

	// Day-related errors
	ErrDayNotFound = NewBaseError(
		http.StatusNotFound,
		"DAY_NOT_FOUND",
		"Day not found",
		"",
	)

	ErrDayNotRoutable = NewBaseError(
		http.StatusUnprocessableEntity,
		"DAY_NOT_ROUTABLE",
		"Day has no start and end location with coordinates",
		"",
	)

	// Optimization-related errors
	ErrOptimizationNotReady = NewBaseError(
		http.StatusConflict,
		"OPTIMIZATION_NOT_READY",
		"No successful optimization to accept",
		"",
	)

	ErrOptimizationPartial = NewBaseError(
		http.StatusConflict,
		"OPTIMIZATION_PARTIAL",
		"Optimized route does not cover every stop of the day",
		"",
	)

	ErrOptimizationOutdated = NewBaseError(
		http.StatusConflict,
		"OPTIMIZATION_OUTDATED",
		"Day stops changed since the route was optimized",
		"",
	)

	ErrOptimizationSuperseded = NewBaseError(
		http.StatusConflict,
		"OPTIMIZATION_SUPERSEDED",
		"A newer optimization request replaced this one",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	// Generic errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
