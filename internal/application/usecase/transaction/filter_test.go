package transaction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/domain/valueobject"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func makeTransaction(title, description string, transactionType entity.TransactionType, categoryID uuid.UUID, date time.Time) *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			Amount:      decimal.NewFromInt(100),
			Type:        transactionType,
			CategoryID:  categoryID,
			Title:       title,
			Description: description,
			Date:        date,
		},
		Category: &entity.Category{
			ID:   categoryID,
			Name: "Test",
			Type: entity.CategoryType(transactionType),
		},
	}
}

func TestFilterZeroValueIsIdentity(t *testing.T) {
	catID := uuid.New()
	input := []*entity.TransactionWithCategory{
		makeTransaction("Lunch", "", entity.TransactionTypeExpense, catID, day(2024, time.March, 10)),
		makeTransaction("Salary", "", entity.TransactionTypeIncome, catID, day(2024, time.March, 1)),
	}

	result := Filter{}.Apply(input)
	require.Len(t, result, 2)
	assert.Equal(t, input[0], result[0])
	assert.Equal(t, input[1], result[1])
}

func TestFilterByType(t *testing.T) {
	catID := uuid.New()
	input := []*entity.TransactionWithCategory{
		makeTransaction("Lunch", "", entity.TransactionTypeExpense, catID, day(2024, time.March, 10)),
		makeTransaction("Salary", "", entity.TransactionTypeIncome, catID, day(2024, time.March, 1)),
		makeTransaction("Groceries", "", entity.TransactionTypeExpense, catID, day(2024, time.March, 5)),
	}

	expenses := Filter{Type: TypeFilterExpense}.Apply(input)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Lunch", expenses[0].Transaction.Title)
	assert.Equal(t, "Groceries", expenses[1].Transaction.Title)

	incomes := Filter{Type: TypeFilterIncome}.Apply(input)
	require.Len(t, incomes, 1)
	assert.Equal(t, "Salary", incomes[0].Transaction.Title)

	all := Filter{Type: TypeFilterAll}.Apply(input)
	assert.Len(t, all, 3)
}

func TestFilterByCategory(t *testing.T) {
	food := uuid.New()
	travel := uuid.New()
	input := []*entity.TransactionWithCategory{
		makeTransaction("Lunch", "", entity.TransactionTypeExpense, food, day(2024, time.March, 10)),
		makeTransaction("Train", "", entity.TransactionTypeExpense, travel, day(2024, time.March, 5)),
	}

	result := Filter{CategoryID: &food}.Apply(input)
	require.Len(t, result, 1)
	assert.Equal(t, "Lunch", result[0].Transaction.Title)
}

func TestFilterBySearch(t *testing.T) {
	catID := uuid.New()
	input := []*entity.TransactionWithCategory{
		makeTransaction("Warung lunch", "nasi goreng", entity.TransactionTypeExpense, catID, day(2024, time.March, 10)),
		makeTransaction("Groceries", "monthly LUNCH prep", entity.TransactionTypeExpense, catID, day(2024, time.March, 5)),
		makeTransaction("Train", "commute", entity.TransactionTypeExpense, catID, day(2024, time.March, 2)),
	}

	result := Filter{Search: "lunch"}.Apply(input)
	require.Len(t, result, 2, "search should match title and description case-insensitively")
	assert.Equal(t, "Warung lunch", result[0].Transaction.Title)
	assert.Equal(t, "Groceries", result[1].Transaction.Title)

	result = Filter{Search: "  LUNCH  "}.Apply(input)
	assert.Len(t, result, 2, "search term should be trimmed")
}

func TestFilterByDateRange(t *testing.T) {
	catID := uuid.New()
	input := []*entity.TransactionWithCategory{
		makeTransaction("In range", "", entity.TransactionTypeExpense, catID, day(2024, time.March, 15)),
		makeTransaction("Before", "", entity.TransactionTypeExpense, catID, day(2024, time.February, 28)),
		makeTransaction("Boundary start", "", entity.TransactionTypeExpense, catID, day(2024, time.March, 1)),
		makeTransaction("Boundary end", "", entity.TransactionTypeExpense, catID, day(2024, time.March, 31)),
	}

	r, err := valueobject.NewDateRange(day(2024, time.March, 1), day(2024, time.March, 31))
	require.NoError(t, err)

	result := Filter{DateRange: r}.Apply(input)
	require.Len(t, result, 3)
	assert.Equal(t, "In range", result[0].Transaction.Title)
	assert.Equal(t, "Boundary start", result[1].Transaction.Title)
	assert.Equal(t, "Boundary end", result[2].Transaction.Title)
}

func TestFilterCombinesCriteriaWithAnd(t *testing.T) {
	food := uuid.New()
	travel := uuid.New()
	input := []*entity.TransactionWithCategory{
		makeTransaction("Lunch", "", entity.TransactionTypeExpense, food, day(2024, time.March, 10)),
		makeTransaction("Lunch money", "", entity.TransactionTypeIncome, food, day(2024, time.March, 10)),
		makeTransaction("Lunch trip", "", entity.TransactionTypeExpense, travel, day(2024, time.March, 10)),
	}

	result := Filter{Type: TypeFilterExpense, CategoryID: &food, Search: "lunch"}.Apply(input)
	require.Len(t, result, 1)
	assert.Equal(t, "Lunch", result[0].Transaction.Title)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	catID := uuid.New()
	input := []*entity.TransactionWithCategory{
		makeTransaction("C", "", entity.TransactionTypeExpense, catID, day(2024, time.March, 20)),
		makeTransaction("A", "", entity.TransactionTypeIncome, catID, day(2024, time.March, 15)),
		makeTransaction("B", "", entity.TransactionTypeExpense, catID, day(2024, time.March, 10)),
	}
	snapshot := make([]*entity.TransactionWithCategory, len(input))
	copy(snapshot, input)

	result := Filter{Type: TypeFilterExpense}.Apply(input)
	require.Len(t, result, 2)
	assert.Equal(t, "C", result[0].Transaction.Title)
	assert.Equal(t, "B", result[1].Transaction.Title)
	assert.Equal(t, snapshot, input, "input slice must not be mutated")
}

func TestResolvePeriodPreset(t *testing.T) {
	today := day(2024, time.March, 15)
	preset := valueobject.PresetThisMonth

	r, err := ResolvePeriod(&preset, nil, nil, today)
	require.NoError(t, err)
	assert.Equal(t, valueobject.RangeBounded, r.Kind)
	assert.Equal(t, day(2024, time.March, 1), r.Start)
	assert.Equal(t, day(2024, time.March, 31), r.End)
}

func TestResolvePeriodCustom(t *testing.T) {
	today := day(2024, time.March, 15)
	start := day(2024, time.January, 1)
	end := day(2024, time.February, 1)

	r, err := ResolvePeriod(nil, &start, &end, today)
	require.NoError(t, err)
	assert.True(t, r.Contains(day(2024, time.January, 15)))
	assert.False(t, r.Contains(day(2024, time.February, 2)))

	// Open-ended on the start side.
	r, err = ResolvePeriod(nil, nil, &end, today)
	require.NoError(t, err)
	assert.True(t, r.Contains(day(1990, time.June, 1)))
	assert.False(t, r.Contains(day(2024, time.February, 2)))

	// Inverted bounds are rejected.
	_, err = ResolvePeriod(nil, &end, &start, today)
	assert.Error(t, err)
}

func TestResolvePeriodUnset(t *testing.T) {
	r, err := ResolvePeriod(nil, nil, nil, day(2024, time.March, 15))
	require.NoError(t, err)
	assert.False(t, r.IsSet())
}
