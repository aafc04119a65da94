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

// GetBalanceOverviewInput represents the input for a balance overview. The
// period only affects the Filtered section.
type GetBalanceOverviewInput struct {
	UserID    uuid.UUID
	Preset    *valueobject.DatePreset
	StartDate *time.Time
	EndDate   *time.Time
}

// GetBalanceOverviewOutput represents the output of a balance overview.
// MonthToDate and AllTime are always computed over the full transaction set;
// Filtered reflects the requested period.
type GetBalanceOverviewOutput struct {
	MonthToDate Totals `json:"monthToDate"`
	AllTime     Totals `json:"allTime"`
	Filtered    Totals `json:"filtered"`
	PeriodLabel string `json:"periodLabel"`
}

// GetBalanceOverviewUseCase computes the three balance views shown on the
// dashboard header.
type GetBalanceOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	reportCache     adapter.ReportCache
	now             func() time.Time
}

// NewGetBalanceOverviewUseCase creates a new GetBalanceOverviewUseCase
// instance. The now function anchors relative presets and defaults to
// time.Now.
func NewGetBalanceOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	reportCache adapter.ReportCache,
	now func() time.Time,
) *GetBalanceOverviewUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetBalanceOverviewUseCase{
		transactionRepo: transactionRepo,
		reportCache:     reportCache,
		now:             now,
	}
}

// Execute computes the overview, serving from cache when possible.
func (uc *GetBalanceOverviewUseCase) Execute(ctx context.Context, input GetBalanceOverviewInput) (*GetBalanceOverviewOutput, error) {
	today := uc.now()
	dateRange, err := resolveReportPeriod(input.Preset, input.StartDate, input.EndDate, today)
	if err != nil {
		return nil, err
	}

	key := cacheKey(input.UserID, "balance", rangeKey(dateRange))
	var cached GetBalanceOverviewOutput
	if readCache(ctx, uc.reportCache, key, &cached) {
		return &cached, nil
	}

	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	monthToDate := transaction.Filter{DateRange: valueobject.CurrentMonth(today)}.Apply(all)
	filtered := transaction.Filter{DateRange: dateRange}.Apply(all)

	output := &GetBalanceOverviewOutput{
		MonthToDate: SumTotals(monthToDate),
		AllTime:     SumTotals(all),
		Filtered:    SumTotals(filtered),
		PeriodLabel: valueobject.FormatPeriodLabel(dateRange),
	}
	writeCache(ctx, uc.reportCache, key, output)

	return output, nil
}
