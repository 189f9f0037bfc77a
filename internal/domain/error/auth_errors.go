// Package error defines domain-specific errors for the FinanTrack application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering with an existing email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when the password fails strength validation.
	ErrWeakPassword = errors.New("password must be at least 8 characters long")

	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when the bearer token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound       AuthErrorCode = "AUT-010001"
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUT-010002"
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010003"
	ErrCodeWeakPassword       AuthErrorCode = "AUT-010004"
	ErrCodeMissingToken       AuthErrorCode = "AUT-010005"
	ErrCodeInvalidToken       AuthErrorCode = "AUT-010006"
	ErrCodeRateLimited        AuthErrorCode = "AUT-010007"

	// Internal errors (99XXXX)
	ErrCodeAuthInternalError AuthErrorCode = "AUT-990001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
