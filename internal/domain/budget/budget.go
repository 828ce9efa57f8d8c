// Package budget holds per-category spending limits and their evaluation.
package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// Period is the length of a budget window.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// IsValid returns true if the period is one of the defined constants.
func (p Period) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	default:
		return false
	}
}

// Budget caps spending in one category per period.
type Budget struct {
	ID         int64
	UserID     int64
	CategoryID int64
	Amount     decimal.Decimal
	Currency   string
	Period     Period
	StartDate  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks business rules for the Budget entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (b *Budget) Validate() error {
	fields := make(map[string]string)

	if b.CategoryID <= 0 {
		fields["category_id"] = domain.MsgRequired
	}
	if !b.Amount.IsPositive() {
		fields["amount"] = domain.MsgMustBePositive
	}
	if c, err := domain.NormalizeCurrency(b.Currency); err != nil {
		fields["currency"] = "must be a 3-letter ISO 4217 code"
	} else {
		b.Currency = c
	}
	if !b.Period.IsValid() {
		fields["period"] = fmt.Sprintf("invalid: %q", b.Period)
	}

	return domain.FieldsError(fields)
}

// Window returns the [start, end) range of the budget period containing now.
// Monthly and yearly windows follow the calendar; weekly windows are 7-day
// blocks anchored at StartDate. A budget never looks before its StartDate.
func (b *Budget) Window(now time.Time) (start, end time.Time) {
	today := domain.Day(now)
	anchor := domain.Day(b.StartDate)

	switch b.Period {
	case PeriodWeekly:
		if b.StartDate.IsZero() || today.Before(anchor) {
			// Monday-based weeks without an anchor.
			offset := (int(today.Weekday()) + 6) % 7
			start = today.AddDate(0, 0, -offset)
			if !b.StartDate.IsZero() && start.Before(anchor) {
				start = anchor
			}
			return start, start.AddDate(0, 0, 7)
		}
		weeks := domain.DaysBetween(anchor, today) / 7
		start = anchor.AddDate(0, 0, weeks*7)
		return start, start.AddDate(0, 0, 7)
	case PeriodYearly:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, 0)
	default:
		start = domain.MonthStart(today)
		end = start.AddDate(0, 1, 0)
	}

	if !b.StartDate.IsZero() && start.Before(anchor) {
		start = anchor
	}
	return start, end
}

// Status is a budget's position within its current window.
type Status struct {
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed float64
	OverBudget  bool
}

// Evaluate compares spent (in the budget currency) against the limit.
// Remaining goes negative once the budget is exceeded.
func (b *Budget) Evaluate(spent decimal.Decimal) Status {
	s := Status{
		Spent:      spent.Round(2),
		Remaining:  b.Amount.Sub(spent).Round(2),
		OverBudget: spent.GreaterThan(b.Amount),
	}
	if b.Amount.IsPositive() {
		s.PercentUsed = spent.Mul(decimal.NewFromInt(100)).Div(b.Amount).Round(1).InexactFloat64()
	}
	return s
}
