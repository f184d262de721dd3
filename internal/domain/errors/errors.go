package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid code")
	ErrCodeExpired        = errors.New("code expired")
	ErrCodeAlreadyUsed    = errors.New("code already used")
	ErrSessionInvalidated = errors.New("session invalidated")
)

// Stable error codes surfaced to the frontend
const (
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidCode        = "INVALID_CODE"
	CodeExpired            = "EXPIRED"
	CodeAlreadyUsed        = "ALREADY_USED"
	CodeSessionInvalidated = "SESSION_INVALIDATED"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidation, message, ErrInvalidInput)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeDuplicateKey, message, ErrDuplicateKey)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}

// FromDomain maps a bare domain error to an AppError with the right status.
// Unknown errors surface as 500, matching the no-retry propagation policy.
func FromDomain(err error) *AppError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NotFound("resource not found")
	case errors.Is(err, ErrDuplicateKey):
		return Conflict("duplicate key")
	case errors.Is(err, ErrInvalidInput):
		return BadRequest("invalid input")
	case errors.Is(err, ErrInvalidCredentials):
		return NewAppError(http.StatusUnauthorized, CodeInvalidCredentials, "invalid credentials", err)
	case errors.Is(err, ErrInvalidCode):
		return NewAppError(http.StatusUnauthorized, CodeInvalidCode, "invalid code", err)
	case errors.Is(err, ErrCodeExpired):
		return NewAppError(http.StatusUnauthorized, CodeExpired, "code expired", err)
	case errors.Is(err, ErrCodeAlreadyUsed):
		return NewAppError(http.StatusUnauthorized, CodeAlreadyUsed, "code already used", err)
	case errors.Is(err, ErrSessionInvalidated):
		return NewAppError(http.StatusUnauthorized, CodeSessionInvalidated, "session invalidated", err)
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized("unauthorized")
	case errors.Is(err, ErrForbidden):
		return Forbidden("forbidden")
	}
	return InternalError(err)
}
