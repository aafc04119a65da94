// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/usecase/transaction"
	"github.com/duitku/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Title       string          `json:"title" binding:"required,min=1,max=100"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date" binding:"required"` // ISO format YYYY-MM-DD
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Title       *string          `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description,omitempty"`
	Date        *string          `json:"date,omitempty"` // ISO format YYYY-MM-DD
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string            `json:"id"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        string            `json:"type"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Date        string            `json:"date"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  decimal.Decimal       `json:"total_income"`
	TotalExpense decimal.Decimal       `json:"total_expense"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Amount:      t.Amount,
		Type:        string(t.Type),
		CategoryID:  t.CategoryID.String(),
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date.Format("2006-01-02"),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionResponseWithCategory includes the joined category.
func ToTransactionResponseWithCategory(t *entity.TransactionWithCategory) TransactionResponse {
	response := ToTransactionResponse(t.Transaction)
	if t.Category != nil {
		category := ToCategoryResponse(t.Category)
		response.Category = &category
	}
	return response
}

// ToTransactionListResponse converts a list output to a
// TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponseWithCategory(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		TotalIncome:  output.TotalIncome,
		TotalExpense: output.TotalExpense,
	}
}
