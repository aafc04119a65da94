// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/usecase/transaction"
	"github.com/duitku/backend/internal/domain/valueobject"
)

// GetDailyTrendInput represents the input for a daily trend report. An unset
// period defaults to the current month.
type GetDailyTrendInput struct {
	UserID    uuid.UUID
	Preset    *valueobject.DatePreset
	StartDate *time.Time
	EndDate   *time.Time
}

// GetDailyTrendOutput represents the output of a daily trend report.
type GetDailyTrendOutput struct {
	Points []DailyPoint `json:"points"`
	Totals Totals       `json:"totals"`
}

// GetDailyTrendUseCase computes day-by-day income and expense totals over a
// period.
type GetDailyTrendUseCase struct {
	transactionRepo adapter.TransactionRepository
	reportCache     adapter.ReportCache
	now             func() time.Time
}

// NewGetDailyTrendUseCase creates a new GetDailyTrendUseCase instance. The
// now function anchors relative presets and defaults to time.Now.
func NewGetDailyTrendUseCase(
	transactionRepo adapter.TransactionRepository,
	reportCache adapter.ReportCache,
	now func() time.Time,
) *GetDailyTrendUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetDailyTrendUseCase{
		transactionRepo: transactionRepo,
		reportCache:     reportCache,
		now:             now,
	}
}

// Execute computes the trend, serving from cache when possible.
func (uc *GetDailyTrendUseCase) Execute(ctx context.Context, input GetDailyTrendInput) (*GetDailyTrendOutput, error) {
	dateRange, err := resolveReportPeriod(input.Preset, input.StartDate, input.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	key := cacheKey(input.UserID, "trend", rangeKey(dateRange))
	var cached GetDailyTrendOutput
	if readCache(ctx, uc.reportCache, key, &cached) {
		return &cached, nil
	}

	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filtered := transaction.Filter{DateRange: dateRange}.Apply(all)

	output := &GetDailyTrendOutput{
		Points: BuildDailyTrend(filtered),
		Totals: SumTotals(filtered),
	}
	writeCache(ctx, uc.reportCache, key, output)

	return output, nil
}
