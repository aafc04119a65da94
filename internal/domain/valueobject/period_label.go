package valueobject

import (
	"fmt"
	"time"
)

// indonesianMonths maps time.Month to the abbreviated Indonesian month name.
var indonesianMonths = [...]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "Mei",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Agu",
	time.September: "Sep",
	time.October:   "Okt",
	time.November:  "Nov",
	time.December:  "Des",
}

func formatIndonesianDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()], t.Year())
}

// FormatPeriodLabel renders the human-readable period line shown on reports
// and exports. Open-ended custom ranges use the Sejak/Sampai forms.
func FormatPeriodLabel(dateRange DateRange) string {
	if dateRange.Kind != RangeBounded {
		return "Semua Data"
	}

	sinceOpen := dateRange.Start.Equal(EarliestDate)
	untilOpen := dateRange.End.Equal(LatestDate)
	switch {
	case sinceOpen && untilOpen:
		return "Semua Data"
	case sinceOpen:
		return "Sampai " + formatIndonesianDate(dateRange.End)
	case untilOpen:
		return "Sejak " + formatIndonesianDate(dateRange.Start)
	case dateRange.Start.Equal(dateRange.End):
		return "Per " + formatIndonesianDate(dateRange.Start)
	default:
		return formatIndonesianDate(dateRange.Start) + " - " + formatIndonesianDate(dateRange.End)
	}
}
