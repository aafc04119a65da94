package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePreset(t *testing.T) {
	today := day(2024, time.March, 15)

	tests := []struct {
		name   string
		preset DatePreset
		start  time.Time
		end    time.Time
	}{
		{"today", PresetToday, day(2024, time.March, 15), day(2024, time.March, 15)},
		{"this month", PresetThisMonth, day(2024, time.March, 1), day(2024, time.March, 31)},
		{"next month", PresetNextMonth, day(2024, time.April, 1), day(2024, time.April, 30)},
		{"next 3 months", PresetNext3Months, day(2024, time.March, 1), day(2024, time.May, 31)},
		{"last month", PresetLastMonth, day(2024, time.February, 1), day(2024, time.February, 29)},
		{"last 3 months", PresetLast3Months, day(2023, time.December, 1), day(2024, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ResolvePreset(tt.preset, today)
			require.NoError(t, err)
			assert.Equal(t, RangeBounded, r.Kind)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
		})
	}
}

func TestResolvePresetAll(t *testing.T) {
	r, err := ResolvePreset(PresetAll, day(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, RangeAll, r.Kind)
	assert.True(t, r.Contains(day(1970, time.January, 1)))
	assert.True(t, r.Contains(day(2099, time.December, 31)))
}

func TestResolvePresetUnknown(t *testing.T) {
	_, err := ResolvePreset("fortnight", day(2024, time.March, 15))
	assert.Error(t, err)
}

func TestResolvePresetMonthEndStability(t *testing.T) {
	// Jan 31 + one month must not skip February.
	r, err := ResolvePreset(PresetNextMonth, day(2024, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 1), r.Start)
	assert.Equal(t, day(2024, time.February, 29), r.End)
}

func TestResolvePresetYearBoundary(t *testing.T) {
	r, err := ResolvePreset(PresetLastMonth, day(2024, time.January, 10))
	require.NoError(t, err)
	assert.Equal(t, day(2023, time.December, 1), r.Start)
	assert.Equal(t, day(2023, time.December, 31), r.End)

	r, err = ResolvePreset(PresetNext3Months, day(2023, time.November, 5))
	require.NoError(t, err)
	assert.Equal(t, day(2023, time.November, 1), r.Start)
	assert.Equal(t, day(2024, time.January, 31), r.End)

	r, err = ResolvePreset(PresetLast3Months, day(2024, time.February, 10))
	require.NoError(t, err)
	assert.Equal(t, day(2023, time.November, 1), r.Start)
	assert.Equal(t, day(2024, time.February, 29), r.End)
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange(day(2024, time.March, 1), day(2024, time.March, 10))
	require.NoError(t, err)
	assert.True(t, r.Contains(day(2024, time.March, 1)))
	assert.True(t, r.Contains(day(2024, time.March, 10)))
	assert.False(t, r.Contains(day(2024, time.March, 11)))
	assert.False(t, r.Contains(day(2024, time.February, 29)))

	_, err = NewDateRange(day(2024, time.March, 10), day(2024, time.March, 1))
	assert.Error(t, err)
}

func TestSingleDayRange(t *testing.T) {
	r, err := NewDateRange(day(2024, time.March, 5), day(2024, time.March, 5))
	require.NoError(t, err)
	assert.True(t, r.Contains(day(2024, time.March, 5)))
	assert.False(t, r.Contains(day(2024, time.March, 4)))
	assert.False(t, r.Contains(day(2024, time.March, 6)))
}

func TestUnsetRange(t *testing.T) {
	var r DateRange
	assert.False(t, r.IsSet())
	assert.False(t, r.Contains(day(2024, time.March, 15)))
}

func TestContainsIgnoresTimeComponent(t *testing.T) {
	r, err := NewDateRange(day(2024, time.March, 1), day(2024, time.March, 31))
	require.NoError(t, err)
	assert.True(t, r.Contains(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)))
}

func TestCurrentMonth(t *testing.T) {
	r := CurrentMonth(day(2024, time.February, 29))
	assert.Equal(t, day(2024, time.February, 1), r.Start)
	assert.Equal(t, day(2024, time.February, 29), r.End)
}
