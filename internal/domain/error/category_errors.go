// Package error defines domain-specific errors for the FinanTrack application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when a category with the same name
	// and type already exists for the user.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrCategoryInUse is returned when deleting a category that still has
	// transactions.
	ErrCategoryInUse = errors.New("category has transactions and cannot be deleted")

	// ErrUnauthorizedCategoryAccess is returned when the category belongs to
	// another user.
	ErrUnauthorizedCategoryAccess = errors.New("unauthorized access to category")

	// ErrInvalidCategoryType is returned when the type is neither INCOME nor
	// EXPENSE.
	ErrInvalidCategoryType = errors.New("type must be INCOME or EXPENSE")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound           CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryAlreadyExists      CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryInUse              CategoryErrorCode = "CAT-010003"
	ErrCodeUnauthorizedCategoryAccess CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidCategoryType        CategoryErrorCode = "CAT-010005"

	// Internal errors (99XXXX)
	ErrCodeCategoryInternalError CategoryErrorCode = "CAT-990001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
