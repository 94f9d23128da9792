package payperiod_test

import (
	"testing"
	"time"

	"go-payroll/internal/payperiod"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFrequencyForPeriods(t *testing.T) {
	assert.Equal(t, payperiod.FrequencyMonthly, payperiod.FrequencyForPeriods(12))
	assert.Equal(t, payperiod.FrequencySemimonthly, payperiod.FrequencyForPeriods(24))
	assert.Equal(t, payperiod.FrequencyBiweekly, payperiod.FrequencyForPeriods(26))

	// Unknown settings fall back to biweekly rather than erroring.
	assert.Equal(t, payperiod.FrequencyBiweekly, payperiod.FrequencyForPeriods(0))
	assert.Equal(t, payperiod.FrequencyBiweekly, payperiod.FrequencyForPeriods(52))
	assert.Equal(t, payperiod.FrequencyBiweekly, payperiod.FrequencyForPeriods(-3))
}

func TestNext_Biweekly_FromMonday(t *testing.T) {
	// Reference Monday 2024-01-15: the next period starts the following
	// Monday and covers 14 days inclusive.
	s := payperiod.Next(date(2024, time.January, 15), payperiod.FrequencyBiweekly)

	assert.Equal(t, date(2024, time.January, 22), s.Start)
	assert.Equal(t, date(2024, time.February, 4), s.End)
	assert.Equal(t, date(2024, time.February, 5), s.PayDate)
}

func TestNext_Biweekly_FromSunday_SeeksFollowingMonday(t *testing.T) {
	// Seeding from a Sunday: the very next day is a Monday, but a fresh
	// schedule leaves at least a day before the first run begins.
	s := payperiod.Next(date(2024, time.January, 14), payperiod.FrequencyBiweekly)

	assert.Equal(t, date(2024, time.January, 22), s.Start)
	assert.Equal(t, date(2024, time.February, 4), s.End)
}

func TestNextAfter_Biweekly_Contiguous(t *testing.T) {
	// Continuing a schedule must start each run the day after the prior
	// end, covering every calendar day with no gap.
	s := payperiod.Next(date(2024, time.January, 15), payperiod.FrequencyBiweekly)
	for i := 0; i < 6; i++ {
		next := payperiod.NextAfter(s.End, payperiod.FrequencyBiweekly)
		assert.Equal(t, s.End.AddDate(0, 0, 1), next.Start, "run %d", i)
		assert.Equal(t, time.Monday, next.Start.Weekday())
		assert.Equal(t, next.Start.AddDate(0, 0, 13), next.End)
		assert.Equal(t, next.End.AddDate(0, 0, 1), next.PayDate)
		s = next
	}
}

func TestNext_Biweekly_AlwaysStartsMonday(t *testing.T) {
	ref := date(2024, time.March, 1)
	for i := 0; i < 30; i++ {
		s := payperiod.Next(ref.AddDate(0, 0, i), payperiod.FrequencyBiweekly)
		assert.Equal(t, time.Monday, s.Start.Weekday())
		assert.Equal(t, 13, int(s.End.Sub(s.Start).Hours()/24))
		assert.Equal(t, s.End.AddDate(0, 0, 1), s.PayDate)
		assert.True(t, s.Start.After(ref.AddDate(0, 0, i)))
	}
}

func TestNext_Monthly(t *testing.T) {
	// Mid-month reference rolls to the first of the next month.
	s := payperiod.Next(date(2024, time.March, 10), payperiod.FrequencyMonthly)
	assert.Equal(t, date(2024, time.April, 1), s.Start)
	assert.Equal(t, date(2024, time.April, 30), s.End)
	assert.Equal(t, date(2024, time.May, 1), s.PayDate)

	// Continuing from a month end yields the immediately following month
	// with no gap.
	s = payperiod.NextAfter(date(2024, time.April, 30), payperiod.FrequencyMonthly)
	assert.Equal(t, date(2024, time.May, 1), s.Start)
	assert.Equal(t, date(2024, time.May, 31), s.End)
	assert.Equal(t, date(2024, time.June, 1), s.PayDate)
}

func TestNext_Monthly_YearRollover(t *testing.T) {
	s := payperiod.Next(date(2024, time.December, 31), payperiod.FrequencyMonthly)
	assert.Equal(t, date(2025, time.January, 1), s.Start)
	assert.Equal(t, date(2025, time.January, 31), s.End)
	assert.Equal(t, date(2025, time.February, 1), s.PayDate)
}

func TestNext_Semimonthly(t *testing.T) {
	// Continuing from the 15th picks the back half of the same month.
	s := payperiod.NextAfter(date(2024, time.January, 15), payperiod.FrequencySemimonthly)
	assert.Equal(t, date(2024, time.January, 16), s.Start)
	assert.Equal(t, date(2024, time.January, 31), s.End)
	assert.Equal(t, date(2024, time.February, 1), s.PayDate)

	// Continuing from month end picks the front half of the next month.
	s = payperiod.NextAfter(date(2024, time.January, 31), payperiod.FrequencySemimonthly)
	assert.Equal(t, date(2024, time.February, 1), s.Start)
	assert.Equal(t, date(2024, time.February, 15), s.End)
	assert.Equal(t, date(2024, time.February, 16), s.PayDate)
}

func TestNext_Semimonthly_LeapFebruary(t *testing.T) {
	s := payperiod.Next(date(2024, time.February, 15), payperiod.FrequencySemimonthly)
	assert.Equal(t, date(2024, time.February, 16), s.Start)
	assert.Equal(t, date(2024, time.February, 29), s.End)
	assert.Equal(t, date(2024, time.March, 1), s.PayDate)

	s = payperiod.Next(date(2023, time.February, 15), payperiod.FrequencySemimonthly)
	assert.Equal(t, date(2023, time.February, 28), s.End)
}

func TestNext_Semimonthly_Contiguous(t *testing.T) {
	// A year of chained periods must be strictly increasing with no overlap.
	ref := date(2024, time.January, 15)
	prevEnd := ref
	for i := 0; i < 24; i++ {
		s := payperiod.NextAfter(prevEnd, payperiod.FrequencySemimonthly)
		assert.True(t, s.Start.After(prevEnd), "period %d start %v not after %v", i, s.Start, prevEnd)
		assert.True(t, s.End.After(s.Start) || s.End.Equal(s.Start))
		assert.True(t, s.PayDate.After(s.End))
		prevEnd = s.End
	}
	assert.Equal(t, date(2025, time.January, 15), prevEnd)
}

func TestNext_TruncatesTimeOfDay(t *testing.T) {
	noon := time.Date(2024, time.January, 15, 12, 30, 45, 0, time.UTC)
	s := payperiod.Next(noon, payperiod.FrequencyBiweekly)
	assert.Equal(t, date(2024, time.January, 22), s.Start)
}
