package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duitku/backend/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type categoryFixture struct {
	id   uuid.UUID
	name string
}

func newCategoryFixture(name string) categoryFixture {
	return categoryFixture{id: uuid.New(), name: name}
}

func makeTransaction(cat categoryFixture, transactionType entity.TransactionType, amount int64, date time.Time) *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:         uuid.New(),
			Amount:     decimal.NewFromInt(amount),
			Type:       transactionType,
			CategoryID: cat.id,
			Title:      cat.name,
			Date:       date,
		},
		Category: &entity.Category{
			ID:   cat.id,
			Name: cat.name,
			Icon: "circle",
			Type: entity.CategoryType(transactionType),
		},
	}
}

func TestBuildCategoryBreakdown(t *testing.T) {
	food := newCategoryFixture("Food")
	travel := newCategoryFixture("Travel")
	salary := newCategoryFixture("Salary")

	transactions := []*entity.TransactionWithCategory{
		makeTransaction(food, entity.TransactionTypeExpense, 60000, day(2024, time.March, 1)),
		makeTransaction(food, entity.TransactionTypeExpense, 15000, day(2024, time.March, 2)),
		makeTransaction(travel, entity.TransactionTypeExpense, 25000, day(2024, time.March, 3)),
		makeTransaction(salary, entity.TransactionTypeIncome, 500000, day(2024, time.March, 1)),
	}

	slices := BuildCategoryBreakdown(transactions, entity.TransactionTypeExpense)
	require.Len(t, slices, 2, "income rows must not appear in an expense breakdown")

	assert.Equal(t, "Food", slices[0].Name)
	assert.True(t, slices[0].Total.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, 2, slices[0].Count)
	assert.Equal(t, 75.0, slices[0].Percentage)

	assert.Equal(t, "Travel", slices[1].Name)
	assert.True(t, slices[1].Total.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, 1, slices[1].Count)
	assert.Equal(t, 25.0, slices[1].Percentage)
}

func TestBuildCategoryBreakdownPercentagesSumTo100(t *testing.T) {
	a := newCategoryFixture("A")
	b := newCategoryFixture("B")
	c := newCategoryFixture("C")

	// 1/3 splits do not round cleanly; the residual lands on the largest slice.
	transactions := []*entity.TransactionWithCategory{
		makeTransaction(a, entity.TransactionTypeExpense, 100, day(2024, time.March, 1)),
		makeTransaction(b, entity.TransactionTypeExpense, 100, day(2024, time.March, 1)),
		makeTransaction(c, entity.TransactionTypeExpense, 100, day(2024, time.March, 1)),
	}

	slices := BuildCategoryBreakdown(transactions, entity.TransactionTypeExpense)
	require.Len(t, slices, 3)

	sum := decimal.Zero
	for _, s := range slices {
		sum = sum.Add(decimal.NewFromFloat(s.Percentage))
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(100)), "percentages sum to %s", sum)
}

func TestBuildCategoryBreakdownEmpty(t *testing.T) {
	slices := BuildCategoryBreakdown(nil, entity.TransactionTypeExpense)
	assert.Empty(t, slices)

	// Only income rows: the expense breakdown is empty, not a zero division.
	salary := newCategoryFixture("Salary")
	transactions := []*entity.TransactionWithCategory{
		makeTransaction(salary, entity.TransactionTypeIncome, 500000, day(2024, time.March, 1)),
	}
	slices = BuildCategoryBreakdown(transactions, entity.TransactionTypeExpense)
	assert.Empty(t, slices)
}

func TestBuildCategoryBreakdownTieBreaksByName(t *testing.T) {
	zebra := newCategoryFixture("Zebra")
	apple := newCategoryFixture("Apple")

	transactions := []*entity.TransactionWithCategory{
		makeTransaction(zebra, entity.TransactionTypeExpense, 100, day(2024, time.March, 1)),
		makeTransaction(apple, entity.TransactionTypeExpense, 100, day(2024, time.March, 1)),
	}

	slices := BuildCategoryBreakdown(transactions, entity.TransactionTypeExpense)
	require.Len(t, slices, 2)
	assert.Equal(t, "Apple", slices[0].Name)
	assert.Equal(t, "Zebra", slices[1].Name)
}

func TestBuildDailyTrend(t *testing.T) {
	salary := newCategoryFixture("Salary")
	food := newCategoryFixture("Food")

	transactions := []*entity.TransactionWithCategory{
		makeTransaction(food, entity.TransactionTypeExpense, 10000, day(2024, time.March, 2)),
		makeTransaction(salary, entity.TransactionTypeIncome, 100000, day(2024, time.March, 1)),
		makeTransaction(food, entity.TransactionTypeExpense, 40000, day(2024, time.March, 1)),
	}

	points := BuildDailyTrend(transactions)
	require.Len(t, points, 2)

	assert.Equal(t, "2024-03-01", points[0].Date)
	assert.True(t, points[0].Income.Equal(decimal.NewFromInt(100000)))
	assert.True(t, points[0].Expense.Equal(decimal.NewFromInt(40000)))

	assert.Equal(t, "2024-03-02", points[1].Date)
	assert.True(t, points[1].Income.IsZero(), "days without income carry an explicit zero")
	assert.True(t, points[1].Expense.Equal(decimal.NewFromInt(10000)))
}

func TestSumTotals(t *testing.T) {
	salary := newCategoryFixture("Salary")
	food := newCategoryFixture("Food")

	transactions := []*entity.TransactionWithCategory{
		makeTransaction(salary, entity.TransactionTypeIncome, 100000, day(2024, time.March, 1)),
		makeTransaction(food, entity.TransactionTypeExpense, 40000, day(2024, time.March, 1)),
		makeTransaction(food, entity.TransactionTypeExpense, 10000, day(2024, time.March, 2)),
	}

	totals := SumTotals(transactions)
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(100000)))
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(50000)))
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(50000)))
}

func TestSumTotalsEmpty(t *testing.T) {
	totals := SumTotals(nil)
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Balance.IsZero())
}
