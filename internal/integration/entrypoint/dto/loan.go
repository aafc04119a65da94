// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateLoanRequest represents the request body for loan creation.
type CreateLoanRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=100"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	LoanDate string          `json:"loan_date" binding:"required"` // ISO format YYYY-MM-DD
	DueDate  *string         `json:"due_date,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

// UpdateLoanRequest represents the request body for loan update. Sending
// "due_date": null clears the due date.
type UpdateLoanRequest struct {
	Name     *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	LoanDate *string          `json:"loan_date,omitempty"`
	DueDate  OptionalString   `json:"due_date,omitempty"`
	Status   *string          `json:"status,omitempty" binding:"omitempty,oneof=unpaid paid"`
	Notes    *string          `json:"notes,omitempty"`
}

// SetLoanStatusRequest represents the request body for a loan status change.
type SetLoanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid"`
}

// LoanResponse represents a single loan in API responses.
type LoanResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	LoanDate  string          `json:"loan_date"`
	DueDate   *string         `json:"due_date,omitempty"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LoanListResponse represents the response for listing loans.
type LoanListResponse struct {
	Loans            []LoanResponse  `json:"loans"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

// ToLoanResponse converts a domain Loan entity to a LoanResponse DTO.
func ToLoanResponse(loan *entity.Loan) LoanResponse {
	var dueDate *string
	if loan.DueDate != nil {
		formatted := loan.DueDate.Format("2006-01-02")
		dueDate = &formatted
	}

	return LoanResponse{
		ID:        loan.ID.String(),
		Name:      loan.Name,
		Amount:    loan.Amount,
		LoanDate:  loan.LoanDate.Format("2006-01-02"),
		DueDate:   dueDate,
		Status:    string(loan.Status),
		Notes:     loan.Notes,
		CreatedAt: loan.CreatedAt,
		UpdatedAt: loan.UpdatedAt,
	}
}

// ToLoanListResponse converts loans and the outstanding total to a
// LoanListResponse.
func ToLoanListResponse(loans []*entity.Loan, totalOutstanding decimal.Decimal) LoanListResponse {
	responses := make([]LoanResponse, len(loans))
	for i, l := range loans {
		responses[i] = ToLoanResponse(l)
	}
	return LoanListResponse{
		Loans:            responses,
		TotalOutstanding: totalOutstanding,
	}
}
