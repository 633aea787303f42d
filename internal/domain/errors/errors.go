// Package errors defines application errors that surface to the user as
// transient notifications.
package errors

import (
	"net/http"

	"orderpad/internal/errors"
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
	// Order-related errors
	ErrEmptyOrder = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMPTY_ORDER",
		"Cannot save empty order!",
		"",
	)

	ErrHistoryEmpty = NewBaseError(
		http.StatusNotFound,
		"HISTORY_EMPTY",
		"No saved orders!",
		"",
	)

	// History-related errors
	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"Order record not found",
		"",
	)

	ErrNothingSelected = NewBaseError(
		http.StatusBadRequest,
		"NOTHING_SELECTED",
		"Select at least one record to delete",
		"",
	)

	// Export-related errors
	ErrInvalidExportFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EXPORT_FILTER",
		"Enter a valid month and year",
		"",
	)

	ErrExportNoMatch = NewBaseError(
		http.StatusNotFound,
		"EXPORT_NO_MATCH",
		"No records found for that month",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// Preference-related errors
	ErrInvalidTheme = NewBaseError(
		http.StatusBadRequest,
		"INVALID_THEME",
		"Theme must be light or dark",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// StorageExecuteError represents a local store failure, implementing the
// AppError interface
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "storage execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return "STORAGE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return "Could not access local storage"
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}
