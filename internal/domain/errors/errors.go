package errors

import (
	"net/http"

	"campus/internal/errors"
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

// Error taxonomy shared by all services. Remote failures surface as one of
// these so the delivery layer can translate them without inspecting causes.
var (
	ErrPersonNotFound = NewBaseError(
		http.StatusNotFound,
		"PERSON_NOT_FOUND",
		"Person not found",
		"",
	)

	ErrStudentNotFound = NewBaseError(
		http.StatusNotFound,
		"STUDENT_NOT_FOUND",
		"Student not found",
		"",
	)

	ErrStudyProgramNotFound = NewBaseError(
		http.StatusNotFound,
		"STUDY_PROGRAM_NOT_FOUND",
		"Study program not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// ErrUpstreamUnavailable covers transport failures against a sibling
	// service after the retry budget is exhausted.
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"UPSTREAM_UNAVAILABLE",
		"Service is currently unavailable. Please try again later.",
		"",
	)

	// ErrDeadlineExceeded is the deadline flavor of upstream unavailability.
	ErrDeadlineExceeded = NewBaseError(
		http.StatusGatewayTimeout,
		"DEADLINE_EXCEEDED",
		"Service is currently unavailable. Please try again later.",
		"",
	)

	// ErrCallNotPermitted is returned while a circuit breaker is open;
	// no network attempt was made.
	ErrCallNotPermitted = NewBaseError(
		http.StatusServiceUnavailable,
		"CALL_NOT_PERMITTED",
		"Service is currently unavailable. Please try again later.",
		"",
	)

	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"Invalid value",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"Access denied",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Missing identity headers",
		"",
	)

	// ErrFetchInterrupted reports cancellation observed while a lookup
	// branch was still blocked.
	ErrFetchInterrupted = NewBaseError(
		http.StatusInternalServerError,
		"FETCH_INTERRUPTED",
		"Fetch was interrupted",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Unexpected error",
		"",
	)
)

// FetchError wraps a non-taxonomy failure raised by an aggregation branch,
// keeping the operation name and the requested identifier with the cause.
type FetchError struct {
	operation string
	id        string
	cause     error
}

// NewFetchError creates a FetchError for the given operation and record id.
func NewFetchError(operation, id string, cause error) *FetchError {
	return &FetchError{
		operation: operation,
		id:        id,
		cause:     cause,
	}
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return e.operation + " failed for id " + e.id + ": " + e.cause.Error()
}

// Unwrap exposes the original branch failure.
func (e *FetchError) Unwrap() error {
	return e.cause
}

// ID returns the requested record identifier.
func (e *FetchError) ID() string {
	return e.id
}

// Operation returns the failed operation name.
func (e *FetchError) Operation() string {
	return e.operation
}

// HTTPCode returns the HTTP status code
func (e *FetchError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *FetchError) ErrorCode() string {
	return "FETCH_FAILED"
}

// Message returns the user-friendly error message
func (e *FetchError) Message() string {
	return "Failed to fetch " + e.operation
}

// Details returns detailed error information
func (e *FetchError) Details() string {
	return ""
}
