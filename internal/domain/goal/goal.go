// Package goal holds the savings Goal entity and its progress rules.
package goal

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// Status is the lifecycle state of a Goal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

var hundred = decimal.NewFromInt(100)

// Goal is a savings target. CurrentAmount moves with every linked
// transaction, expressed in the goal's own Currency.
type Goal struct {
	ID            int64
	UserID        int64
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      string
	Deadline      *time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks business rules for the Goal entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. Currency is normalized in place and an empty
// Status defaults to active.
func (g *Goal) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(g.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !g.TargetAmount.IsPositive() {
		fields["target_amount"] = domain.MsgMustBePositive
	}
	if g.CurrentAmount.IsNegative() {
		fields["current_amount"] = "must not be negative"
	}
	if c, err := domain.NormalizeCurrency(g.Currency); err != nil {
		fields["currency"] = "must be a 3-letter ISO 4217 code"
	} else {
		g.Currency = c
	}
	if g.Status == "" {
		g.Status = StatusActive
	}
	if !g.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", g.Status)
	}

	return domain.FieldsError(fields)
}

// ProgressPercent returns progress toward the target as a whole percentage,
// truncated and clamped to 0..100.
func (g *Goal) ProgressPercent() int {
	if !g.TargetAmount.IsPositive() || !g.CurrentAmount.IsPositive() {
		return 0
	}
	pct := g.CurrentAmount.Mul(hundred).Div(g.TargetAmount).IntPart()
	return int(min(pct, 100))
}

// Remaining returns how much is left to save, never below zero.
func (g *Goal) Remaining() decimal.Decimal {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// Apply adds a signed delta to CurrentAmount. An active goal reaching its
// target becomes completed; a completed goal dropping below target (for
// example after a transaction is deleted) becomes active again. Archived
// goals keep their status.
func (g *Goal) Apply(delta decimal.Decimal) {
	g.CurrentAmount = g.CurrentAmount.Add(delta)

	reached := g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	switch {
	case g.Status == StatusActive && reached:
		g.Status = StatusCompleted
	case g.Status == StatusCompleted && !reached:
		g.Status = StatusActive
	}
}
