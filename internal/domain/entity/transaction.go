// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a financial transaction. Amount is always a positive
// magnitude; the sign is implied by Type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Type        TransactionType
	CategoryID  uuid.UUID
	Title       string
	Description string
	Date        time.Time // Calendar date, time component is always midnight UTC
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity. The date is normalized to
// midnight UTC so that date-only comparisons behave consistently.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID uuid.UUID,
	title string,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		Title:       title,
		Description: description,
		Date:        NormalizeDate(date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NormalizeDate truncates a timestamp to its calendar date in UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
