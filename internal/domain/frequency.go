package domain

import "time"

// Frequency describes how often a bill or recurring expense repeats.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid returns true if the frequency is one of the defined constants.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// IsRecurring is false only for one-time schedules.
func (f Frequency) IsRecurring() bool {
	return f.IsValid() && f != FrequencyOnce
}

// Next returns the occurrence after t. Monthly and yearly steps use calendar
// arithmetic clamped to month end. Once returns t unchanged.
func (f Frequency) Next(t time.Time) time.Time {
	return f.NextOnDay(t, t.Day())
}

// NextOnDay is Next for a schedule pinned to anchorDay of the month. A
// schedule anchored on the 31st lands on Feb 28 and returns to Mar 31.
// Daily and weekly steps ignore the anchor.
func (f Frequency) NextOnDay(t time.Time, anchorDay int) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return withDay(AddMonths(t, 1), anchorDay)
	case FrequencyYearly:
		return withDay(AddMonths(t, 12), anchorDay)
	default:
		return t
	}
}

// String implements fmt.Stringer.
func (f Frequency) String() string {
	return string(f)
}
