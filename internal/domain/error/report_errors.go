// Package error defines domain-specific errors for the FinanTrack application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidMonth is returned when the month is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year is outside the supported range.
	ErrInvalidYear = errors.New("year must be between 2020 and 2100")

	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must be after start_date")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTrendWindow is returned when the trend window is not positive.
	ErrInvalidTrendWindow = errors.New("months must be a positive number")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth       ReportErrorCode = "RPT-010001"
	ErrCodeInvalidYear        ReportErrorCode = "RPT-010002"
	ErrCodeMissingStartDate   ReportErrorCode = "RPT-010003"
	ErrCodeMissingEndDate     ReportErrorCode = "RPT-010004"
	ErrCodeInvalidDateRange   ReportErrorCode = "RPT-010005"
	ErrCodeInvalidDateFormat  ReportErrorCode = "RPT-010006"
	ErrCodeInvalidTrendWindow ReportErrorCode = "RPT-010007"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
