// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// MaxTitleLength is the maximum allowed length for transaction titles.
const MaxTitleLength = 100

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  uuid.UUID
	Title       string
	Description string
	Date        time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	reportCache     adapter.ReportCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		reportCache:     reportCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Amount, input.Type, input.Title); err != nil {
		return nil, err
	}

	category, err := uc.resolveCategory(ctx, input.UserID, input.CategoryID, input.Type)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Amount,
		input.Type,
		category.ID,
		strings.TrimSpace(input.Title),
		strings.TrimSpace(input.Description),
		input.Date,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// resolveCategory loads the category and enforces visibility and the
// type-match rule shared by create and update.
func (uc *CreateTransactionUseCase) resolveCategory(
	ctx context.Context,
	userID, categoryID uuid.UUID,
	transactionType entity.TransactionType,
) (*entity.Category, error) {
	return resolveCategoryForTransaction(ctx, uc.categoryRepo, userID, categoryID, transactionType)
}

func resolveCategoryForTransaction(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	userID, categoryID uuid.UUID,
	transactionType entity.TransactionType,
) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if !category.VisibleTo(userID) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if string(category.Type) != string(transactionType) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("a %s transaction requires a %s category", transactionType, transactionType),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return category, nil
}

// validateTransactionFields checks the field-level rules shared by create and
// update.
func validateTransactionFields(amount decimal.Decimal, transactionType entity.TransactionType, title string) error {
	if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTitleRequired,
			"transaction title is required",
			domainerror.ErrTitleRequired,
		)
	}
	if len(title) > MaxTitleLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTitleRequired,
			fmt.Sprintf("transaction title must not exceed %d characters", MaxTitleLength),
			domainerror.ErrTitleRequired,
		)
	}

	return nil
}

// invalidateReports drops the user's cached reports after a write. Cache
// failures are logged and swallowed; the write has already succeeded.
func invalidateReports(ctx context.Context, cache adapter.ReportCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate report cache",
			"user_id", userID,
			"error", err,
		)
	}
}
