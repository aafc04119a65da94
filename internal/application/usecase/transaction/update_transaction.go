// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	CategoryID    *uuid.UUID
	Title         *string
	Description   *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	reportCache     adapter.ReportCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		reportCache:     reportCache,
	}
}

// Execute performs the transaction update. When type or category changes, the
// resulting pair must still satisfy the type-match rule.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	amount := transaction.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}
	transactionType := transaction.Type
	if input.Type != nil {
		transactionType = *input.Type
	}
	title := transaction.Title
	if input.Title != nil {
		title = *input.Title
	}

	if err := validateTransactionFields(amount, transactionType, title); err != nil {
		return nil, err
	}

	categoryID := transaction.CategoryID
	if input.CategoryID != nil {
		categoryID = *input.CategoryID
	}

	// Re-resolve whenever type or category moved; the pair is validated as a
	// whole, not field by field.
	if input.Type != nil || input.CategoryID != nil {
		category, err := resolveCategoryForTransaction(ctx, uc.categoryRepo, input.UserID, categoryID, transactionType)
		if err != nil {
			return nil, err
		}
		categoryID = category.ID
	}

	transaction.Amount = amount
	transaction.Type = transactionType
	transaction.CategoryID = categoryID
	transaction.Title = strings.TrimSpace(title)
	if input.Description != nil {
		transaction.Description = strings.TrimSpace(*input.Description)
	}
	if input.Date != nil {
		transaction.Date = entity.NormalizeDate(*input.Date)
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
