package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Response body keys. Credential failures answer with "message", everything else with "error".
const (
	KeyError   = "error"
	KeyMessage = "message"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int       // HTTP status code
	ErrorCode() string   // Business error code
	Message() string     // User-facing message
	Details() string     // Detailed error information (optional)
	ResponseKey() string // JSON key the message is rendered under
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode    int
	errorCode   string
	message     string
	details     string
	responseKey string
}

// NewBaseError creates a new base error rendered under the "error" key
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:    httpCode,
		errorCode:   errorCode,
		message:     message,
		details:     details,
		responseKey: KeyError,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the error code so copies made by WithDetails still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// ResponseKey returns the JSON key used for the message
func (e *BaseError) ResponseKey() string {
	return e.responseKey
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

func (e *BaseError) asMessage() *BaseError {
	e.responseKey = KeyMessage

	return e
}

// Predefined error types
var (
	// Registration errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User with this email already exists",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusBadRequest,
		"USER_CREATION_FAILED",
		"Missing required user information",
		"",
	)

	// Login errors
	ErrUserNotFound = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"User not found",
		"",
	).asMessage()

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	).asMessage()

	// Server-side errors
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
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
	return errors.Wrap(e.err, e.details).Error()
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

// Message returns the raw failure so operators can see what the store reported
func (e *DatabaseExecuteError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// ResponseKey returns the JSON key used for the message
func (e *DatabaseExecuteError) ResponseKey() string {
	return KeyError
}
