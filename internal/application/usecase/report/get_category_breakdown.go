// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/usecase/transaction"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/domain/valueobject"
)

// GetCategoryBreakdownInput represents the input for a category breakdown
// report. An unset period defaults to the current month.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	Type      entity.TransactionType
	Preset    *valueobject.DatePreset
	StartDate *time.Time
	EndDate   *time.Time
}

// GetCategoryBreakdownOutput represents the output of a category breakdown
// report.
type GetCategoryBreakdownOutput struct {
	Type   entity.TransactionType `json:"type"`
	Slices []CategorySlice        `json:"slices"`
}

// GetCategoryBreakdownUseCase computes per-category totals and shares for one
// transaction type over a period.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	reportCache     adapter.ReportCache
	now             func() time.Time
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase
// instance. The now function anchors relative presets and defaults to
// time.Now.
func NewGetCategoryBreakdownUseCase(
	transactionRepo adapter.TransactionRepository,
	reportCache adapter.ReportCache,
	now func() time.Time,
) *GetCategoryBreakdownUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		reportCache:     reportCache,
		now:             now,
	}
}

// Execute computes the breakdown, serving from cache when possible.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"report type must be 'expense' or 'income'",
			domainerror.ErrInvalidReportType,
		)
	}

	dateRange, err := resolveReportPeriod(input.Preset, input.StartDate, input.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	key := cacheKey(input.UserID, "breakdown", string(input.Type), rangeKey(dateRange))
	var cached GetCategoryBreakdownOutput
	if readCache(ctx, uc.reportCache, key, &cached) {
		return &cached, nil
	}

	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filtered := transaction.Filter{DateRange: dateRange}.Apply(all)

	output := &GetCategoryBreakdownOutput{
		Type:   input.Type,
		Slices: BuildCategoryBreakdown(filtered, input.Type),
	}
	writeCache(ctx, uc.reportCache, key, output)

	return output, nil
}

// resolveReportPeriod resolves a report period, defaulting to the current
// month when nothing was supplied.
func resolveReportPeriod(preset *valueobject.DatePreset, start, end *time.Time, today time.Time) (valueobject.DateRange, error) {
	dateRange, err := transaction.ResolvePeriod(preset, start, end, today)
	if err != nil {
		return valueobject.DateRange{}, err
	}
	if !dateRange.IsSet() {
		return valueobject.CurrentMonth(today), nil
	}
	return dateRange, nil
}
