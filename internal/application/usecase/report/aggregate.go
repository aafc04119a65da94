// Package report contains reporting and aggregation use cases.
package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// CategorySlice is one category's share of a breakdown.
type CategorySlice struct {
	CategoryID uuid.UUID       `json:"categoryId"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Total      decimal.Decimal `json:"total"`
	Percentage float64         `json:"percentage"`
	Count      int             `json:"count"`
}

// DailyPoint is one calendar day's income and expense totals. Days with
// activity in only one direction carry an explicit zero for the other.
type DailyPoint struct {
	Date    string          `json:"date"` // ISO format YYYY-MM-DD
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Totals holds summed income, expense, and their difference.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// BuildCategoryBreakdown groups the given transactions of one type by
// category and computes each category's share. Slices are ordered by total
// descending, then name ascending for equal totals. Percentages are rounded
// to two decimals and adjusted so a non-empty breakdown sums to exactly 100.
func BuildCategoryBreakdown(transactions []*entity.TransactionWithCategory, transactionType entity.TransactionType) []CategorySlice {
	byCategory := make(map[uuid.UUID]*CategorySlice)
	grand := decimal.Zero

	for _, t := range transactions {
		if t.Transaction.Type != transactionType {
			continue
		}
		slice, ok := byCategory[t.Transaction.CategoryID]
		if !ok {
			slice = &CategorySlice{
				CategoryID: t.Transaction.CategoryID,
				Name:       t.Category.Name,
				Icon:       t.Category.Icon,
				Total:      decimal.Zero,
			}
			byCategory[t.Transaction.CategoryID] = slice
		}
		slice.Total = slice.Total.Add(t.Transaction.Amount)
		slice.Count++
		grand = grand.Add(t.Transaction.Amount)
	}

	slices := make([]CategorySlice, 0, len(byCategory))
	for _, s := range byCategory {
		slices = append(slices, *s)
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Total.Equal(slices[j].Total) {
			return slices[i].Total.GreaterThan(slices[j].Total)
		}
		return slices[i].Name < slices[j].Name
	})

	if len(slices) == 0 || grand.IsZero() {
		return slices
	}

	// Round each share to two decimals, then push the rounding residual into
	// the largest slice so the column sums to exactly 100.
	sum := decimal.Zero
	for i := range slices {
		pct := slices[i].Total.Mul(oneHundred).Div(grand).Round(2)
		slices[i].Percentage = pct.InexactFloat64()
		sum = sum.Add(pct)
	}
	residual := oneHundred.Sub(sum)
	if !residual.IsZero() {
		adjusted := decimal.NewFromFloat(slices[0].Percentage).Add(residual)
		slices[0].Percentage = adjusted.InexactFloat64()
	}

	return slices
}

// BuildDailyTrend buckets the given transactions by calendar day. Points are
// ordered by date ascending and only days with at least one transaction
// appear.
func BuildDailyTrend(transactions []*entity.TransactionWithCategory) []DailyPoint {
	byDate := make(map[string]*DailyPoint)

	for _, t := range transactions {
		key := t.Transaction.Date.Format("2006-01-02")
		point, ok := byDate[key]
		if !ok {
			point = &DailyPoint{Date: key, Income: decimal.Zero, Expense: decimal.Zero}
			byDate[key] = point
		}
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			point.Income = point.Income.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			point.Expense = point.Expense.Add(t.Transaction.Amount)
		}
	}

	points := make([]DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// SumTotals sums income and expense over the given transactions.
func SumTotals(transactions []*entity.TransactionWithCategory) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(t.Transaction.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
