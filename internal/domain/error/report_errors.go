// Package error defines domain-specific errors for the Duitku application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidPeriod is returned when the period preset or custom range is invalid.
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInvalidReportType is returned when the type filter is not expense, income, or all.
	ErrInvalidReportType = errors.New("invalid report type filter")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod     ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportType ReportErrorCode = "RPT-010002"
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
