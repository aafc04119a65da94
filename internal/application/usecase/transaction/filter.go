// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/domain/valueobject"
)

// TypeFilter narrows transactions by type. The zero value matches everything.
type TypeFilter string

const (
	TypeFilterAll     TypeFilter = "all"
	TypeFilterExpense TypeFilter = "expense"
	TypeFilterIncome  TypeFilter = "income"
)

// ParseTypeFilter validates a type filter string. An empty string means all.
func ParseTypeFilter(raw string) (TypeFilter, error) {
	switch TypeFilter(raw) {
	case "", TypeFilterAll:
		return TypeFilterAll, nil
	case TypeFilterExpense:
		return TypeFilterExpense, nil
	case TypeFilterIncome:
		return TypeFilterIncome, nil
	default:
		return "", errors.New("type must be all, expense, or income")
	}
}

// Filter describes the composable criteria for narrowing a transaction list.
// Empty criteria match everything, so the zero Filter is the identity.
type Filter struct {
	Type       TypeFilter
	CategoryID *uuid.UUID
	Search     string // Case-insensitive substring match on title and description
	DateRange  valueobject.DateRange
}

// Apply returns the transactions matching every set criterion, preserving the
// input order. The input slice is never mutated.
func (f Filter) Apply(transactions []*entity.TransactionWithCategory) []*entity.TransactionWithCategory {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	result := make([]*entity.TransactionWithCategory, 0, len(transactions))
	for _, t := range transactions {
		if !f.matches(t, search) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func (f Filter) matches(t *entity.TransactionWithCategory, search string) bool {
	switch f.Type {
	case TypeFilterExpense:
		if t.Transaction.Type != entity.TransactionTypeExpense {
			return false
		}
	case TypeFilterIncome:
		if t.Transaction.Type != entity.TransactionTypeIncome {
			return false
		}
	}

	if f.CategoryID != nil && t.Transaction.CategoryID != *f.CategoryID {
		return false
	}

	if search != "" {
		title := strings.ToLower(t.Transaction.Title)
		description := strings.ToLower(t.Transaction.Description)
		if !strings.Contains(title, search) && !strings.Contains(description, search) {
			return false
		}
	}

	if f.DateRange.IsSet() && !f.DateRange.Contains(t.Transaction.Date) {
		return false
	}

	return true
}
