// Package error defines domain-specific errors for the Duitku application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is not expense or income.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidAmount is returned when the transaction amount is not positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrTitleRequired is returned when the transaction title is empty after trimming.
	ErrTitleRequired = errors.New("transaction title is required")

	// ErrCategoryTypeMismatch is returned when the transaction type does not match its category's type.
	ErrCategoryTypeMismatch = errors.New("transaction type does not match category type")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidDate is returned when the transaction date cannot be parsed.
	ErrInvalidDate = errors.New("invalid transaction date")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidAmount            TransactionErrorCode = "TXN-010002"
	ErrCodeTitleRequired            TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidDate              TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010005"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010006"

	// Business rule errors (02XXXX)
	ErrCodeCategoryTypeMismatch TransactionErrorCode = "TXN-020001"
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
