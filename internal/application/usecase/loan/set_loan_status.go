// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// SetLoanStatusInput represents the input for marking a loan paid or unpaid.
type SetLoanStatusInput struct {
	LoanID uuid.UUID
	UserID uuid.UUID
	Status entity.LoanStatus
}

// SetLoanStatusOutput represents the output of a loan status change.
type SetLoanStatusOutput struct {
	Loan *entity.Loan
}

// SetLoanStatusUseCase handles loan status transitions. Both directions are
// allowed; marking a paid loan unpaid reopens it.
type SetLoanStatusUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewSetLoanStatusUseCase creates a new SetLoanStatusUseCase instance.
func NewSetLoanStatusUseCase(loanRepo adapter.LoanRepository) *SetLoanStatusUseCase {
	return &SetLoanStatusUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the status change. Setting the current status again is a
// no-op that still succeeds.
func (uc *SetLoanStatusUseCase) Execute(ctx context.Context, input SetLoanStatusInput) (*SetLoanStatusOutput, error) {
	if input.Status != entity.LoanStatusUnpaid && input.Status != entity.LoanStatusPaid {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanStatus,
			"loan status must be 'unpaid' or 'paid'",
			domainerror.ErrInvalidLoanStatus,
		)
	}

	loan, err := findOwnedLoan(ctx, uc.loanRepo, input.LoanID, input.UserID)
	if err != nil {
		return nil, err
	}

	if loan.Status != input.Status {
		loan.Status = input.Status
		loan.UpdatedAt = time.Now().UTC()
		if err := uc.loanRepo.Update(ctx, loan); err != nil {
			return nil, fmt.Errorf("failed to update loan status: %w", err)
		}
	}

	return &SetLoanStatusOutput{
		Loan: loan,
	}, nil
}
