// Package export contains the spreadsheet export use case.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/usecase/report"
	"github.com/duitku/backend/internal/application/usecase/transaction"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/domain/valueobject"
)

// ExportSpreadsheetInput represents the input for a spreadsheet export. The
// filter criteria mirror the transaction list so the exported file matches
// what the user sees.
type ExportSpreadsheetInput struct {
	UserID     uuid.UUID
	Type       transaction.TypeFilter
	CategoryID *uuid.UUID
	Search     string
	Preset     *valueobject.DatePreset
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExportSpreadsheetOutput represents the output of a spreadsheet export.
type ExportSpreadsheetOutput struct {
	Filename string
	Content  []byte
}

// ExportSpreadsheetUseCase builds an xlsx financial report over the filtered
// transaction list, formatted in the user's configured currency.
type ExportSpreadsheetUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	now             func() time.Time
}

// NewExportSpreadsheetUseCase creates a new ExportSpreadsheetUseCase
// instance. The now function anchors relative presets and the export
// timestamp, and defaults to time.Now.
func NewExportSpreadsheetUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	now func() time.Time,
) *ExportSpreadsheetUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportSpreadsheetUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		now:             now,
	}
}

// Execute builds the spreadsheet.
func (uc *ExportSpreadsheetUseCase) Execute(ctx context.Context, input ExportSpreadsheetInput) (*ExportSpreadsheetOutput, error) {
	now := uc.now()

	dateRange, err := transaction.ResolvePeriod(input.Preset, input.StartDate, input.EndDate, now)
	if err != nil {
		return nil, err
	}
	if !dateRange.IsSet() {
		dateRange = valueobject.CurrentMonth(now)
	}

	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filter := transaction.Filter{
		Type:       input.Type,
		CategoryID: input.CategoryID,
		Search:     input.Search,
		DateRange:  dateRange,
	}
	filtered := filter.Apply(all)

	currency := valueobject.CurrencyIDR
	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings != nil {
		if c, err := valueobject.ParseCurrency(settings.Currency); err == nil {
			currency = c
		}
	}

	sheet := buildReportSheet(filtered, dateRange, currency)
	content, err := renderXLSX(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
	}

	return &ExportSpreadsheetOutput{
		Filename: fmt.Sprintf("laporan-keuangan-%s.xlsx", now.Format("20060102-150405")),
		Content:  content,
	}, nil
}

// reportSheet is the intermediate, already-localized representation of the
// exported report.
type reportSheet struct {
	PeriodLabel  string
	TotalIncome  string
	TotalExpense string
	Balance      string
	Rows         []reportRow
}

// reportRow is one transaction line in the export.
type reportRow struct {
	Date        string
	Type        string
	Category    string
	Title       string
	Description string
	Amount      string
}

// buildReportSheet shapes filtered transactions into the localized report
// layout.
func buildReportSheet(transactions []*entity.TransactionWithCategory, dateRange valueobject.DateRange, currency valueobject.Currency) reportSheet {
	totals := report.SumTotals(transactions)

	rows := make([]reportRow, len(transactions))
	for i, t := range transactions {
		rows[i] = reportRow{
			Date:        t.Transaction.Date.Format("02/01/2006"),
			Type:        typeLabel(t.Transaction.Type),
			Category:    t.Category.Name,
			Title:       t.Transaction.Title,
			Description: t.Transaction.Description,
			Amount:      valueobject.FormatAmount(t.Transaction.Amount, currency),
		}
	}

	return reportSheet{
		PeriodLabel:  valueobject.FormatPeriodLabel(dateRange),
		TotalIncome:  valueobject.FormatAmount(totals.Income, currency),
		TotalExpense: valueobject.FormatAmount(totals.Expense, currency),
		Balance:      valueobject.FormatAmount(totals.Balance, currency),
		Rows:         rows,
	}
}

// typeLabel returns the Indonesian label used in exports.
func typeLabel(t entity.TransactionType) string {
	if t == entity.TransactionTypeIncome {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

