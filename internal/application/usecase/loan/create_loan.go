// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// MaxLoanNameLength is the maximum allowed length for borrower names.
const MaxLoanNameLength = 100

// CreateLoanInput represents the input for loan creation.
type CreateLoanInput struct {
	UserID   uuid.UUID
	Name     string
	Amount   decimal.Decimal
	LoanDate time.Time
	DueDate  *time.Time
	Notes    string
}

// CreateLoanOutput represents the output of loan creation.
type CreateLoanOutput struct {
	Loan *entity.Loan
}

// CreateLoanUseCase handles loan creation logic.
type CreateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(loanRepo adapter.LoanRepository) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan creation. New loans always start unpaid.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateLoanFields(name, input.Amount); err != nil {
		return nil, err
	}

	if input.DueDate != nil && entity.NormalizeDate(*input.DueDate).Before(entity.NormalizeDate(input.LoanDate)) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidDueDate,
			"due date cannot precede loan date",
			domainerror.ErrInvalidDueDate,
		)
	}

	loan := entity.NewLoan(input.UserID, name, input.Amount, input.LoanDate, input.DueDate, strings.TrimSpace(input.Notes))

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	return &CreateLoanOutput{
		Loan: loan,
	}, nil
}

// validateLoanFields checks the field-level rules shared by create and update.
func validateLoanFields(name string, amount decimal.Decimal) error {
	if name == "" {
		return domainerror.NewLoanError(
			domainerror.ErrCodeLoanNameRequired,
			"loan name is required",
			domainerror.ErrLoanNameRequired,
		)
	}
	if len(name) > MaxLoanNameLength {
		return domainerror.NewLoanError(
			domainerror.ErrCodeLoanNameRequired,
			fmt.Sprintf("loan name must not exceed %d characters", MaxLoanNameLength),
			domainerror.ErrLoanNameRequired,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanAmount,
			"loan amount must be greater than zero",
			domainerror.ErrInvalidLoanAmount,
		)
	}

	return nil
}
