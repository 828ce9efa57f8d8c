// Package bill holds upcoming and recurring bills.
package bill

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// Bill is an obligation due on DueDate. Recurring bills roll forward when
// paid; one-time bills are flagged IsPaid.
type Bill struct {
	ID         int64
	UserID     int64
	Name       string
	Amount     decimal.Decimal
	Currency   string
	DueDate    time.Time
	Frequency  domain.Frequency
	// AnchorDay is the day of month monthly and yearly bills fall due on.
	AnchorDay  int
	CategoryID *int64
	IsPaid     bool
	LastPaidAt *time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks business rules for the Bill entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (b *Bill) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(b.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !b.Amount.IsPositive() {
		fields["amount"] = domain.MsgMustBePositive
	}
	if c, err := domain.NormalizeCurrency(b.Currency); err != nil {
		fields["currency"] = "must be a 3-letter ISO 4217 code"
	} else {
		b.Currency = c
	}
	if b.DueDate.IsZero() {
		fields["due_date"] = domain.MsgRequired
	} else if b.AnchorDay == 0 {
		b.AnchorDay = b.DueDate.Day()
	}
	if b.Frequency == "" {
		b.Frequency = domain.FrequencyMonthly
	}
	if !b.Frequency.IsValid() {
		fields["frequency"] = fmt.Sprintf("invalid: %q", b.Frequency)
	}
	if b.CategoryID != nil && *b.CategoryID <= 0 {
		fields["category_id"] = fmt.Sprintf("must be positive, got %d", *b.CategoryID)
	}

	return domain.FieldsError(fields)
}

// MarkPaid records a payment at now. Recurring bills advance DueDate by one
// period and stay unpaid for the next cycle.
func (b *Bill) MarkPaid(now time.Time) {
	paid := now
	b.LastPaidAt = &paid

	if b.Frequency.IsRecurring() {
		anchor := b.AnchorDay
		if anchor == 0 {
			anchor = b.DueDate.Day()
		}
		b.DueDate = b.Frequency.NextOnDay(b.DueDate, anchor)
		b.IsPaid = false
		return
	}
	b.IsPaid = true
}

// DaysUntilDue is negative once the due date has passed.
func (b *Bill) DaysUntilDue(now time.Time) int {
	return domain.DaysBetween(now, b.DueDate)
}

// IsOverdue reports an unpaid bill whose due date is before today.
func (b *Bill) IsOverdue(now time.Time) bool {
	return !b.IsPaid && b.DaysUntilDue(now) < 0
}
