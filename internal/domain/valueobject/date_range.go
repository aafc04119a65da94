// Package valueobject contains immutable domain values shared across layers.
package valueobject

import (
	"fmt"
	"time"
)

// DatePreset identifies a named period relative to the current date.
type DatePreset string

const (
	PresetToday       DatePreset = "today"
	PresetAll         DatePreset = "all"
	PresetThisMonth   DatePreset = "thisMonth"
	PresetNextMonth   DatePreset = "nextMonth"
	PresetNext3Months DatePreset = "next3Months"
	PresetLastMonth   DatePreset = "lastMonth"
	PresetLast3Months DatePreset = "last3Months"
	PresetCustom      DatePreset = "custom"
)

// DateRangeKind distinguishes the three states a period filter can be in.
type DateRangeKind int

const (
	// RangeUnset means no period filter was supplied. Callers fall back to
	// their own default (typically the current month).
	RangeUnset DateRangeKind = iota
	// RangeAll matches every date.
	RangeAll
	// RangeBounded matches dates in [Start, End] inclusive.
	RangeBounded
)

// Bounds substituted for the missing side of an open-ended custom range.
var (
	EarliestDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	LatestDate   = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// DateRange is an inclusive calendar-date interval. The zero value is the
// unset range.
type DateRange struct {
	Kind  DateRangeKind
	Start time.Time
	End   time.Time
}

// AllDates returns the range that matches every date.
func AllDates() DateRange {
	return DateRange{Kind: RangeAll}
}

// NewDateRange returns a bounded range covering [start, end]. Both bounds are
// normalized to midnight UTC.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("date range end %s precedes start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return DateRange{Kind: RangeBounded, Start: start, End: end}, nil
}

// Contains reports whether the given date falls inside the range. An unset
// range contains nothing; resolve it first.
func (r DateRange) Contains(date time.Time) bool {
	switch r.Kind {
	case RangeAll:
		return true
	case RangeBounded:
		d := truncateToDay(date)
		return !d.Before(r.Start) && !d.After(r.End)
	default:
		return false
	}
}

// IsSet reports whether the range carries a filter (all or bounded).
func (r DateRange) IsSet() bool {
	return r.Kind != RangeUnset
}

// ResolvePreset translates a named preset into a concrete DateRange relative
// to today. Month arithmetic pins to the first of the month before shifting,
// so results are stable regardless of today's day-of-month.
func ResolvePreset(preset DatePreset, today time.Time) (DateRange, error) {
	today = truncateToDay(today)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch preset {
	case PresetToday:
		return DateRange{Kind: RangeBounded, Start: today, End: today}, nil
	case PresetAll:
		return AllDates(), nil
	case PresetThisMonth:
		return monthSpan(firstOfMonth, 0, 0), nil
	case PresetNextMonth:
		return monthSpan(firstOfMonth, 1, 1), nil
	case PresetNext3Months:
		return monthSpan(firstOfMonth, 0, 2), nil
	case PresetLastMonth:
		return monthSpan(firstOfMonth, -1, -1), nil
	case PresetLast3Months:
		return monthSpan(firstOfMonth, -3, 0), nil
	default:
		return DateRange{}, fmt.Errorf("unknown date preset %q", preset)
	}
}

// CurrentMonth returns the bounded range covering today's calendar month.
func CurrentMonth(today time.Time) DateRange {
	today = truncateToDay(today)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return monthSpan(first, 0, 0)
}

// monthSpan builds a range from the first day of the month firstOffset months
// away through the last day of the month lastOffset months away, both
// relative to firstOfMonth.
func monthSpan(firstOfMonth time.Time, firstOffset, lastOffset int) DateRange {
	start := firstOfMonth.AddDate(0, firstOffset, 0)
	end := firstOfMonth.AddDate(0, lastOffset+1, -1)
	return DateRange{Kind: RangeBounded, Start: start, End: end}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
