// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for transaction listing. The
// period is given either as a preset name or as a custom start/end pair;
// when neither is present no date filter applies.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	Type       TypeFilter
	CategoryID *uuid.UUID
	Search     string
	Preset     *valueobject.DatePreset
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
// The now function anchors relative presets and defaults to time.Now.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, now func() time.Time) *ListTransactionsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		now:             now,
	}
}

// Execute retrieves the user's transactions matching the filter, ordered by
// date descending then creation time descending, with income and expense
// totals over the filtered set.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	dateRange, err := ResolvePeriod(input.Preset, input.StartDate, input.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filter := Filter{
		Type:       input.Type,
		CategoryID: input.CategoryID,
		Search:     input.Search,
		DateRange:  dateRange,
	}
	filtered := filter.Apply(all)

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, t := range filtered {
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(t.Transaction.Amount)
		}
	}

	return &ListTransactionsOutput{
		Transactions: filtered,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
	}, nil
}

// ResolvePeriod turns a preset name or a custom start/end pair into a
// DateRange. A custom pair may be open on either side. With no period at all
// the unset range is returned.
func ResolvePeriod(preset *valueobject.DatePreset, start, end *time.Time, today time.Time) (valueobject.DateRange, error) {
	if preset != nil && *preset != valueobject.PresetCustom {
		r, err := valueobject.ResolvePreset(*preset, today)
		if err != nil {
			return valueobject.DateRange{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidPeriod,
				err.Error(),
				domainerror.ErrInvalidPeriod,
			)
		}
		return r, nil
	}

	if start == nil && end == nil {
		if preset != nil {
			// "custom" without bounds means no date filter.
			return valueobject.AllDates(), nil
		}
		return valueobject.DateRange{}, nil
	}

	// Open-ended custom ranges pin the missing side far in the past or future.
	s := valueobject.EarliestDate
	if start != nil {
		s = *start
	}
	e := valueobject.LatestDate
	if end != nil {
		e = *end
	}

	r, err := valueobject.NewDateRange(s, e)
	if err != nil {
		return valueobject.DateRange{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			err.Error(),
			domainerror.ErrInvalidPeriod,
		)
	}
	return r, nil
}
