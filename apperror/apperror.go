// Package apperror defines a centralized system for application-specific errors.
// Every failure that can reach an HTTP client is expressed as an *AppError so
// that handlers translate lower-level failures (database, token parsing,
// validation) into a consistent taxonomy and a consistent JSON shape, instead
// of leaking raw errors to the client.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType is an enumeration (using `iota`) for different categories of application errors.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database
	DatabaseError
	// ConfigError represents an error related to application configuration
	ConfigError
	// AuthError represents an authentication error (missing/invalid/expired credentials)
	AuthError
	// NotFoundError represents a resource not found error
	NotFoundError
	// ValidationError represents an input validation error (missing or duplicate fields)
	ValidationError
	// BadRequestError represents a generic bad request
	BadRequestError
	// InternalError represents a generic internal server error
	InternalError
	// ConflictError represents a conflict, e.g., resource already exists
	ConflictError
)

// AppError is the application's error type. It carries a user-facing message,
// a type used to derive the HTTP status code, and optionally wraps the
// underlying error for debugging.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // Underlying error
}

// Error returns the string representation of the error, satisfying the `error` interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, allowing `errors.Is` and `errors.As`
// to inspect the chain of wrapped errors.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case DatabaseError:
		return http.StatusInternalServerError
	case ConfigError:
		return http.StatusInternalServerError
	case AuthError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError:
		return http.StatusBadRequest
	case BadRequestError:
		return http.StatusBadRequest
	case InternalError:
		return http.StatusInternalServerError
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError. This is the generic constructor; the
// typed constructors below are preferred for readability.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// NewDatabaseError creates a new DatabaseError
func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

// NewConfigError creates a new ConfigError
func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewAuthError creates a new AuthError
func NewAuthError(message string, underlyingError error) *AppError {
	return NewAppError(AuthError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

// NewBadRequestError creates a new BadRequestError
func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

// NewInternalError creates a new InternalError
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string, underlyingError error) *AppError {
	return NewAppError(ConflictError, message, underlyingError)
}

// ErrorResponse is the JSON payload sent to API clients on failure. Message is
// always present; Error carries the underlying detail and is only populated
// outside production configuration.
type ErrorResponse struct {
	Message string `json:"message" example:"a description of the error"`
	Error   string `json:"error,omitempty" example:"underlying error detail (non-production only)"`
}

// ToResponse converts an AppError to an ErrorResponse. When debug is true and
// an underlying error exists, its detail is exposed alongside the message;
// production configuration must pass debug=false so internal detail is
// suppressed.
func (e *AppError) ToResponse(debug bool) ErrorResponse {
	resp := ErrorResponse{Message: e.Message}
	if debug && e.Err != nil {
		resp.Error = e.Err.Error()
	}
	return resp
}

// FromError attempts to convert a generic error to an *AppError.
// It returns the *AppError and true if successful, otherwise nil and false.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError checks if an error is an AuthError
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsValidationError checks if an error is a Validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflictError checks if an error is a Conflict error
func IsConflictError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
