// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus represents the repayment status of a loan.
type LoanStatus string

const (
	LoanStatusUnpaid LoanStatus = "unpaid"
	LoanStatusPaid   LoanStatus = "paid"
)

// Loan represents an informal loan record ("kasbon"), tracked independently
// of income/expense transactions.
type Loan struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	LoanDate  time.Time
	DueDate   *time.Time
	Status    LoanStatus
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLoan creates a new Loan entity with status unpaid.
func NewLoan(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	loanDate time.Time,
	dueDate *time.Time,
	notes string,
) *Loan {
	now := time.Now().UTC()

	loan := &Loan{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		LoanDate:  NormalizeDate(loanDate),
		Status:    LoanStatusUnpaid,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if dueDate != nil {
		due := NormalizeDate(*dueDate)
		loan.DueDate = &due
	}
	return loan
}
