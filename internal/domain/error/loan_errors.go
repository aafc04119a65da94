// Package error defines domain-specific errors for the Duitku application.
package error

import "errors"

// Loan domain errors.
var (
	// ErrLoanNotFound is returned when a loan is not found in the system.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrLoanNameRequired is returned when the borrower name is empty after trimming.
	ErrLoanNameRequired = errors.New("loan name is required")

	// ErrInvalidLoanAmount is returned when the loan amount is not positive.
	ErrInvalidLoanAmount = errors.New("loan amount must be greater than zero")

	// ErrInvalidLoanStatus is returned when the loan status is not unpaid or paid.
	ErrInvalidLoanStatus = errors.New("invalid loan status")

	// ErrInvalidDueDate is returned when the due date precedes the loan date.
	ErrInvalidDueDate = errors.New("due date cannot precede loan date")

	// ErrNotAuthorizedToModifyLoan is returned when user is not authorized to modify a loan.
	ErrNotAuthorizedToModifyLoan = errors.New("not authorized to modify loan")
)

// LoanErrorCode defines error codes for loan errors.
// Format: LOA-XXYYYY where XX is category and YYYY is specific error.
type LoanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeLoanNameRequired  LoanErrorCode = "LOA-010001"
	ErrCodeInvalidLoanAmount LoanErrorCode = "LOA-010002"
	ErrCodeInvalidLoanStatus LoanErrorCode = "LOA-010003"
	ErrCodeInvalidDueDate    LoanErrorCode = "LOA-010004"
	ErrCodeLoanNotFound      LoanErrorCode = "LOA-010005"
	ErrCodeNotAuthorizedLoan LoanErrorCode = "LOA-010006"
)

// LoanError represents a loan error with code and message.
type LoanError struct {
	Code    LoanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LoanError) Unwrap() error {
	return e.Err
}

// NewLoanError creates a new LoanError with the given code and message.
func NewLoanError(code LoanErrorCode, message string, err error) *LoanError {
	return &LoanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
