// Package errors provides application-level error types and utilities.
// Every error that crosses the HTTP boundary is an AppError so that
// validation, not-found, conflict and authorization failures stay distinguishable.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: strings.Join(details, "; "),
	}
}

// NewValidationError creates a new validation error. Field-level problems go in details
// formatted with FieldError.
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// FieldError formats a field-scoped validation detail as "field: reason".
func FieldError(field, reason string) string {
	return fmt.Sprintf("%s: %s", field, reason)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool { return isType(err, ErrorTypeConflict) }

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool { return isType(err, ErrorTypeForbidden) }

// IsUnauthorizedError checks if the error is an unauthorized error
func IsUnauthorizedError(err error) bool { return isType(err, ErrorTypeUnauthorized) }

// IsDuplicateError checks the message of a database error for a unique-key violation.
// Typed driver checks live in infrastructure/database; this is the fallback for
// errors whose type was lost while wrapping.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "Duplicate entry"), strings.Contains(errStr, "duplicate key"):
		return true
	case strings.Contains(errStr, "violates unique constraint"):
		return true
	case strings.Contains(errStr, "UNIQUE constraint failed"):
		return true
	}
	return false
}
