// Package recurring holds recurring expense templates that the scheduler
// turns into transactions.
package recurring

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

// Expense is a template materialized on every NextDate.
type Expense struct {
	ID         int64
	UserID     int64
	GoalID     *int64
	CategoryID *int64
	Name       string
	Amount     decimal.Decimal
	Currency   string
	Frequency  domain.Frequency
	NextDate   time.Time
	// AnchorDay is the day of month monthly and yearly runs fall on.
	AnchorDay  int
	Active     bool
	LastRunAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks business rules for the Expense entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (e *Expense) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !e.Amount.IsPositive() {
		fields["amount"] = domain.MsgMustBePositive
	}
	if c, err := domain.NormalizeCurrency(e.Currency); err != nil {
		fields["currency"] = "must be a 3-letter ISO 4217 code"
	} else {
		e.Currency = c
	}
	if !e.Frequency.IsValid() {
		fields["frequency"] = fmt.Sprintf("invalid: %q", e.Frequency)
	}
	if e.NextDate.IsZero() {
		fields["next_date"] = domain.MsgRequired
	} else if e.AnchorDay == 0 {
		e.AnchorDay = e.NextDate.Day()
	}

	return domain.FieldsError(fields)
}

// IsDue reports whether an active expense should run on today.
func (e *Expense) IsDue(today time.Time) bool {
	return e.Active && !domain.Day(e.NextDate).After(domain.Day(today))
}

// Advance records a run on today and moves NextDate strictly past today.
// Missed periods are skipped rather than replayed. One-time expenses are
// deactivated.
func (e *Expense) Advance(today time.Time) {
	day := domain.Day(today)
	e.LastRunAt = &day

	if !e.Frequency.IsRecurring() {
		e.Active = false
		return
	}
	anchor := e.AnchorDay
	if anchor == 0 {
		anchor = e.NextDate.Day()
	}
	next := domain.Day(e.NextDate)
	for !next.After(day) {
		next = e.Frequency.NextOnDay(next, anchor)
	}
	e.NextDate = next
}

// ToTransaction builds the expense transaction for day.
func (e *Expense) ToTransaction(day time.Time) transaction.Transaction {
	return transaction.Transaction{
		UserID:      e.UserID,
		GoalID:      e.GoalID,
		CategoryID:  e.CategoryID,
		Type:        transaction.TypeExpense,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Description: e.Name,
		Date:        domain.Day(day),
		Source:      transaction.SourceRecurring,
	}
}
