// Package error defines domain-specific errors for the Duitku application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidLanguage is returned when the language is not a supported code.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidCurrency is returned when the currency is not a supported code.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidTheme is returned when the theme is not light or dark.
	ErrInvalidTheme = errors.New("invalid theme")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLanguage SettingsErrorCode = "SET-010001"
	ErrCodeInvalidCurrency SettingsErrorCode = "SET-010002"
	ErrCodeInvalidTheme    SettingsErrorCode = "SET-010003"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
