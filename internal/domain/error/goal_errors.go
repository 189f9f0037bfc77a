// Package error defines domain-specific errors for the FinanTrack application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a monthly goal is not found.
	ErrGoalNotFound = errors.New("monthly goal not found")

	// ErrGoalAlreadyExists is returned when a goal already exists for the month.
	ErrGoalAlreadyExists = errors.New("goal already exists for this month")

	// ErrInvalidGoalAmount is returned when a goal amount is negative.
	ErrInvalidGoalAmount = errors.New("goal amounts must be non-negative")

	// ErrInvalidGoalPeriod is returned when the month or year is out of range.
	ErrInvalidGoalPeriod = errors.New("invalid goal month or year")

	// ErrUnauthorizedGoalAccess is returned when the goal belongs to another user.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeGoalAlreadyExists      GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalAmount      GoalErrorCode = "GOL-010003"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalPeriod      GoalErrorCode = "GOL-010005"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError GoalErrorCode = "GOL-990001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
