// Package error defines domain-specific errors for the FinanTrack application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount is returned when a transaction amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidTransactionType is returned when the type is neither INCOME
	// nor EXPENSE.
	ErrInvalidTransactionType = errors.New("type must be INCOME or EXPENSE")

	// ErrTypeMismatch is returned when a transaction's type does not match its
	// category's type.
	ErrTypeMismatch = errors.New("transaction type must match category type")

	// ErrUnauthorizedTransactionAccess is returned when the transaction belongs
	// to another user.
	ErrUnauthorizedTransactionAccess = errors.New("unauthorized access to transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound           TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidAmount                 TransactionErrorCode = "TXN-010002"
	ErrCodeTypeMismatch                  TransactionErrorCode = "TXN-010003"
	ErrCodeUnauthorizedTransactionAccess TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidTransactionType        TransactionErrorCode = "TXN-010005"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
