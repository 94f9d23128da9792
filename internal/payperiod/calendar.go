package payperiod

import "time"

type Frequency string

const (
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencySemimonthly Frequency = "semimonthly"
)

// FrequencyForPeriods maps a periods-per-year setting to a pay frequency.
// Unknown values (52 included) fall back to biweekly; callers get a valid
// frequency, never an error.
func FrequencyForPeriods(periodsPerYear int) Frequency {
	switch periodsPerYear {
	case 12:
		return FrequencyMonthly
	case 24:
		return FrequencySemimonthly
	case 26:
		return FrequencyBiweekly
	default:
		return FrequencyBiweekly
	}
}

// Schedule holds the three dates of one pay run. Invariant:
// Start <= End < PayDate. All dates are date-only (UTC midnight).
type Schedule struct {
	Start   time.Time
	End     time.Time
	PayDate time.Time
}

// Next seeds a schedule from an arbitrary reference date, used when no
// period exists yet. Continuing an existing schedule goes through NextAfter.
func Next(reference time.Time, freq Frequency) Schedule {
	ref := dateOnly(reference)

	switch freq {
	case FrequencyMonthly:
		return nextMonthly(ref)
	case FrequencySemimonthly:
		return nextSemimonthly(ref)
	default:
		return nextBiweekly(ref)
	}
}

// NextAfter continues a schedule from an existing period, starting the new
// one the day after the prior end so chained periods cover every day with
// no gap. Biweekly ends always land on a Sunday, so the day after is the
// Monday the next run starts on.
func NextAfter(priorEnd time.Time, freq Frequency) Schedule {
	switch freq {
	case FrequencyMonthly:
		return nextMonthly(dateOnly(priorEnd))
	case FrequencySemimonthly:
		return nextSemimonthly(dateOnly(priorEnd))
	default:
		start := dateOnly(priorEnd).AddDate(0, 0, 1)
		end := start.AddDate(0, 0, 13) // 14 days inclusive
		return Schedule{
			Start:   start,
			End:     end,
			PayDate: end.AddDate(0, 0, 1),
		}
	}
}

// nextBiweekly starts on the next Monday at least two days after the
// reference, so a freshly seeded run never begins the very next morning.
func nextBiweekly(ref time.Time) Schedule {
	start := ref.AddDate(0, 0, 2)
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, 1)
	}

	end := start.AddDate(0, 0, 13) // 14 days inclusive
	return Schedule{
		Start:   start,
		End:     end,
		PayDate: end.AddDate(0, 0, 1),
	}
}

func nextMonthly(ref time.Time) Schedule {
	next := ref.AddDate(0, 0, 1)

	var start time.Time
	if next.Day() == 1 {
		start = next
	} else {
		start = time.Date(next.Year(), next.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	}

	end := lastDayOfMonth(start)
	return Schedule{
		Start:   start,
		End:     end,
		PayDate: end.AddDate(0, 0, 1),
	}
}

// nextSemimonthly alternates the [1st,15th] and [16th,month-end] halves. The
// day after the reference picks which half runs next; day 16 onward rolls to
// the back half of that month, otherwise the front half.
func nextSemimonthly(ref time.Time) Schedule {
	next := ref.AddDate(0, 0, 1)

	var start, end time.Time
	if next.Day() <= 15 {
		start = time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(next.Year(), next.Month(), 15, 0, 0, 0, 0, time.UTC)
	} else {
		start = time.Date(next.Year(), next.Month(), 16, 0, 0, 0, 0, time.UTC)
		end = lastDayOfMonth(next)
	}

	return Schedule{
		Start:   start,
		End:     end,
		PayDate: end.AddDate(0, 0, 1),
	}
}

func lastDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
