package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPeriodLabel(t *testing.T) {
	mar := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	bounded := func(start, end time.Time) DateRange {
		r, err := NewDateRange(start, end)
		require.NoError(t, err)
		return r
	}

	assert.Equal(t, "Per 15 Mar 2024", FormatPeriodLabel(bounded(mar(15), mar(15))))
	assert.Equal(t, "1 Mar 2024 - 31 Mar 2024", FormatPeriodLabel(bounded(mar(1), mar(31))))
	assert.Equal(t, "Sejak 1 Mar 2024", FormatPeriodLabel(bounded(mar(1), LatestDate)))
	assert.Equal(t, "Sampai 31 Mar 2024", FormatPeriodLabel(bounded(EarliestDate, mar(31))))
	assert.Equal(t, "Semua Data", FormatPeriodLabel(AllDates()))
	assert.Equal(t, "Semua Data", FormatPeriodLabel(DateRange{}))
}
