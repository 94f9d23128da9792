package reports

import (
	"time"

	reportserrors "go-payroll/internal/reports/errors"
)

// DateRange is an inclusive pay-date window. Bounds are normalized so the
// range covers whole days regardless of the time component callers pass in.
type DateRange struct {
	From time.Time
	To   time.Time
}

func NewDateRange(from, to time.Time) (DateRange, error) {
	from = startOfDay(from)
	to = endOfDay(to)
	if to.Before(from) {
		return DateRange{}, reportserrors.ErrInvalidDateRange
	}
	return DateRange{From: from, To: to}, nil
}

// QuarterRange maps a calendar quarter of a year onto a pay-date window.
func QuarterRange(year, quarter int) (DateRange, error) {
	if year < 1900 || year > 9999 {
		return DateRange{}, reportserrors.ErrInvalidYear
	}
	if quarter < 1 || quarter > 4 {
		return DateRange{}, reportserrors.ErrInvalidQuarter
	}

	startMonth := time.Month((quarter-1)*3 + 1)
	from := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 3, 0).Add(-time.Second)
	return DateRange{From: from, To: to}, nil
}

// YearRange covers January 1 through December 31 of a year.
func YearRange(year int) (DateRange, error) {
	if year < 1900 || year > 9999 {
		return DateRange{}, reportserrors.ErrInvalidYear
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return DateRange{From: from, To: to}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
