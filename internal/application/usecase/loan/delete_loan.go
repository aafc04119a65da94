// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
)

// DeleteLoanInput represents the input for loan deletion.
type DeleteLoanInput struct {
	LoanID uuid.UUID
	UserID uuid.UUID
}

// DeleteLoanOutput represents the output of loan deletion.
type DeleteLoanOutput struct {
	Success bool
}

// DeleteLoanUseCase handles loan deletion logic.
type DeleteLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewDeleteLoanUseCase creates a new DeleteLoanUseCase instance.
func NewDeleteLoanUseCase(loanRepo adapter.LoanRepository) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan deletion. Loans in either status may be deleted.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, input DeleteLoanInput) (*DeleteLoanOutput, error) {
	if _, err := findOwnedLoan(ctx, uc.loanRepo, input.LoanID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.loanRepo.Delete(ctx, input.LoanID); err != nil {
		return nil, fmt.Errorf("failed to delete loan: %w", err)
	}

	return &DeleteLoanOutput{
		Success: true,
	}, nil
}
