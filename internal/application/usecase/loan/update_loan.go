// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// UpdateLoanInput represents the input for loan update. Nil fields are left
// unchanged. ClearDueDate removes an existing due date.
type UpdateLoanInput struct {
	LoanID       uuid.UUID
	UserID       uuid.UUID
	Name         *string
	Amount       *decimal.Decimal
	LoanDate     *time.Time
	DueDate      *time.Time
	ClearDueDate bool
	Status       *entity.LoanStatus
	Notes        *string
}

// UpdateLoanOutput represents the output of loan update.
type UpdateLoanOutput struct {
	Loan *entity.Loan
}

// UpdateLoanUseCase handles loan update logic.
type UpdateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewUpdateLoanUseCase creates a new UpdateLoanUseCase instance.
func NewUpdateLoanUseCase(loanRepo adapter.LoanRepository) *UpdateLoanUseCase {
	return &UpdateLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan update.
func (uc *UpdateLoanUseCase) Execute(ctx context.Context, input UpdateLoanInput) (*UpdateLoanOutput, error) {
	loan, err := findOwnedLoan(ctx, uc.loanRepo, input.LoanID, input.UserID)
	if err != nil {
		return nil, err
	}

	name := loan.Name
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	amount := loan.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}
	if err := validateLoanFields(name, amount); err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != entity.LoanStatusUnpaid && *input.Status != entity.LoanStatusPaid {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanStatus,
			"loan status must be 'unpaid' or 'paid'",
			domainerror.ErrInvalidLoanStatus,
		)
	}

	loanDate := loan.LoanDate
	if input.LoanDate != nil {
		loanDate = entity.NormalizeDate(*input.LoanDate)
	}
	dueDate := loan.DueDate
	if input.ClearDueDate {
		dueDate = nil
	} else if input.DueDate != nil {
		due := entity.NormalizeDate(*input.DueDate)
		dueDate = &due
	}
	if dueDate != nil && dueDate.Before(loanDate) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidDueDate,
			"due date cannot precede loan date",
			domainerror.ErrInvalidDueDate,
		)
	}

	loan.Name = name
	loan.Amount = amount
	loan.LoanDate = loanDate
	loan.DueDate = dueDate
	if input.Status != nil {
		loan.Status = *input.Status
	}
	if input.Notes != nil {
		loan.Notes = strings.TrimSpace(*input.Notes)
	}
	loan.UpdatedAt = time.Now().UTC()

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}

	return &UpdateLoanOutput{
		Loan: loan,
	}, nil
}

// findOwnedLoan loads a loan and verifies ownership.
func findOwnedLoan(ctx context.Context, loanRepo adapter.LoanRepository, loanID, userID uuid.UUID) (*entity.Loan, error) {
	loan, err := loanRepo.FindByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotFound,
				"loan not found",
				domainerror.ErrLoanNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}

	if loan.UserID != userID {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeNotAuthorizedLoan,
			"not authorized to modify this loan",
			domainerror.ErrNotAuthorizedToModifyLoan,
		)
	}

	return loan, nil
}
