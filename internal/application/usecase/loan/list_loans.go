// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListLoansInput represents the input for loan listing.
type ListLoansInput struct {
	UserID uuid.UUID
	Status *entity.LoanStatus // Optional status filter
}

// ListLoansOutput represents the output of loan listing. TotalOutstanding
// sums unpaid loans across the whole list regardless of the status filter.
type ListLoansOutput struct {
	Loans            []*entity.Loan
	TotalOutstanding decimal.Decimal
}

// ListLoansUseCase handles loan listing logic.
type ListLoansUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(loanRepo adapter.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{
		loanRepo: loanRepo,
	}
}

// Execute retrieves the user's loans ordered by loan date descending.
func (uc *ListLoansUseCase) Execute(ctx context.Context, input ListLoansInput) (*ListLoansOutput, error) {
	loans, err := uc.loanRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	totalOutstanding := decimal.Zero
	for _, l := range loans {
		if l.Status == entity.LoanStatusUnpaid {
			totalOutstanding = totalOutstanding.Add(l.Amount)
		}
	}

	if input.Status != nil {
		filtered := make([]*entity.Loan, 0, len(loans))
		for _, l := range loans {
			if l.Status == *input.Status {
				filtered = append(filtered, l)
			}
		}
		loans = filtered
	}

	return &ListLoansOutput{
		Loans:            loans,
		TotalOutstanding: totalOutstanding,
	}, nil
}
