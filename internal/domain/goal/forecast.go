package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// Forecast projects when a goal will be reached at the current saving pace.
type Forecast struct {
	// MonthlyContribution is the average net amount added per month.
	MonthlyContribution decimal.Decimal
	// MonthsRemaining is -1 when the goal is never reached at this pace.
	MonthsRemaining int
	ProjectedDate   *time.Time
	// RequiredMonthly is what must be saved per month to meet the deadline.
	// Zero when the goal has no deadline.
	RequiredMonthly decimal.Decimal
	OnTrack         bool
}

// Forecast projects completion from the average monthly net contribution.
func (g *Goal) Forecast(monthly decimal.Decimal, now time.Time) Forecast {
	f := Forecast{MonthlyContribution: monthly.Round(2), MonthsRemaining: -1}
	remaining := g.Remaining()
	today := domain.Day(now)

	if g.Deadline != nil {
		months := monthsUntil(today, *g.Deadline)
		if months < 1 {
			f.RequiredMonthly = remaining.Round(2)
		} else {
			f.RequiredMonthly = remaining.Div(decimal.NewFromInt(int64(months))).Round(2)
		}
	}

	if remaining.IsZero() {
		f.MonthsRemaining = 0
		f.ProjectedDate = &today
		f.OnTrack = true
		return f
	}
	if !monthly.IsPositive() {
		return f
	}

	months := int(remaining.Div(monthly).Ceil().IntPart())
	projected := domain.AddMonths(today, months)
	f.MonthsRemaining = months
	f.ProjectedDate = &projected
	f.OnTrack = g.Deadline == nil || !projected.After(domain.Day(*g.Deadline))

	return f
}

// monthsUntil counts whole calendar months from a to b.
func monthsUntil(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
