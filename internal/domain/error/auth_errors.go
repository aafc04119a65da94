// Package error defines domain-specific errors for the Duitku application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet the minimum requirements.
	ErrWeakPassword = errors.New("password does not meet requirements")

	// ErrInvalidToken is returned when a token is malformed or has a bad signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a token has expired.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked is returned when a refresh token has been revoked.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnauthorized is returned when a request lacks valid authentication.
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword AuthErrorCode = "AUTH-010002"

	// Authentication errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-020002"
	ErrCodeTokenExpired       AuthErrorCode = "AUTH-020003"
	ErrCodeTokenRevoked       AuthErrorCode = "AUTH-020004"
	ErrCodeUnauthorized       AuthErrorCode = "AUTH-020005"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-020006"

	// Throttling errors (04XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-040001"

	// Conflict errors (03XXXX)
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUTH-030001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-030002"
)

// AuthError represents an authentication error with code and message.
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
