// Package transaction holds the Transaction entity, list filters and the
// duplicate detection rule shared by bank sync and CSV import.
package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// maxDescriptionLength bounds free-text descriptions.
const maxDescriptionLength = 500

// Transaction is a single income or expense entry. Amount is always positive;
// Type carries the direction.
type Transaction struct {
	ID          int64
	UserID      int64
	GoalID      *int64
	CategoryID  *int64
	Type        Type
	Amount      decimal.Decimal
	Currency    string
	Description string
	Date        time.Time
	Source      Source
	ExternalID  string

	// GoalAmount is the signed amount applied to the linked goal, in the
	// goal's currency. It is set by the service layer and reversed exactly
	// on update and delete.
	GoalAmount decimal.Decimal
	CreatedAt  time.Time
}

// Validate checks business rules for the Transaction entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. Currency is normalized in place.
func (t *Transaction) Validate() error {
	fields := make(map[string]string)

	if !t.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		fields["amount"] = domain.MsgMustBePositive
	}
	if c, err := domain.NormalizeCurrency(t.Currency); err != nil {
		fields["currency"] = "must be a 3-letter ISO 4217 code"
	} else {
		t.Currency = c
	}
	if strings.TrimSpace(t.Description) == "" {
		fields["description"] = domain.MsgRequired
	} else if len(t.Description) > maxDescriptionLength {
		fields["description"] = fmt.Sprintf("must be at most %d characters", maxDescriptionLength)
	}
	if t.Date.IsZero() {
		fields["date"] = domain.MsgRequired
	}
	if !t.Source.IsValid() {
		fields["source"] = fmt.Sprintf("invalid: %q", t.Source)
	}
	if t.GoalID != nil && *t.GoalID <= 0 {
		fields["goal_id"] = fmt.Sprintf("must be positive, got %d", *t.GoalID)
	}
	if t.CategoryID != nil && *t.CategoryID <= 0 {
		fields["category_id"] = fmt.Sprintf("must be positive, got %d", *t.CategoryID)
	}

	return domain.FieldsError(fields)
}

// Signed returns the amount with its direction: positive for income and
// negative for expenses.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Filter holds optional filter criteria for listing transactions.
// Zero-value fields mean "no filter" for that dimension. From and To are
// inclusive calendar days.
type Filter struct {
	GoalID     *int64
	CategoryID *int64
	Type       Type
	Source     Source
	From       *time.Time
	To         *time.Time
	Limit      int
}
