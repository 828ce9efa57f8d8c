package dto

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/user"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = time.DateOnly

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgInvalidDate  = "must be a date in YYYY-MM-DD format"
	msgPositive     = "must be greater than zero"
)

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// checkDate records a field error when s is set and not a valid date.
func checkDate(fields map[string]string, field string, s *string) {
	if s == nil || *s == "" {
		return
	}
	if _, err := ParseDate(*s); err != nil {
		fields[field] = msgInvalidDate
	}
}

// RegisterRequest represents the JSON body for creating an account.
type RegisterRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Password     string `json:"password"`
	BaseCurrency string `json:"base_currency,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)

	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	switch {
	case len(r.Password) < user.MinPasswordLength:
		fields["password"] = fmt.Sprintf("must be at least %d characters", user.MinPasswordLength)
	case len(r.Password) > user.MaxPasswordBytes:
		fields["password"] = fmt.Sprintf("must be at most %d bytes", user.MaxPasswordBytes)
	}

	return domain.FieldsError(fields)
}

// LoginRequest represents the JSON body for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	return domain.FieldsError(fields)
}

// UpdateSettingsRequest represents the JSON body for changing account
// settings. All fields are optional; nil means "do not change this field.".
// An empty whatsapp_phone unlinks the number.
type UpdateSettingsRequest struct {
	Name          *string `json:"name,omitempty"`
	BaseCurrency  *string `json:"base_currency,omitempty"`
	WhatsAppPhone *string `json:"whatsapp_phone,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateSettingsRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.BaseCurrency != nil {
		if _, err := domain.NormalizeCurrency(*r.BaseCurrency); err != nil {
			fields["base_currency"] = "must be a 3-letter ISO 4217 code"
		}
	}

	return domain.FieldsError(fields)
}

// GoalRequest represents the JSON body for creating or replacing a goal.
type GoalRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	TargetAmount  decimal.Decimal  `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Currency      string           `json:"currency"`
	Deadline      *string          `json:"deadline,omitempty"`
	Status        string           `json:"status,omitempty"`
}

// Validate checks field formats. Business rules are enforced by the domain.
func (r *GoalRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if !r.TargetAmount.IsPositive() {
		fields["target_amount"] = msgPositive
	}
	if strings.TrimSpace(r.Currency) == "" {
		fields["currency"] = msgRequired
	}
	checkDate(fields, "deadline", r.Deadline)

	return domain.FieldsError(fields)
}

// TransactionRequest represents the JSON body for creating or replacing a
// transaction.
type TransactionRequest struct {
	GoalID      *int64          `json:"goal_id,omitempty"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// Validate checks field formats.
func (r *TransactionRequest) Validate() error {
	fields := make(map[string]string)

	if r.Type == "" {
		fields["type"] = msgRequired
	}
	if !r.Amount.IsPositive() {
		fields["amount"] = msgPositive
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}
	if r.Date == "" {
		fields["date"] = msgRequired
	} else {
		checkDate(fields, "date", &r.Date)
	}

	return domain.FieldsError(fields)
}

// CategoryRequest represents the JSON body for creating or replacing a
// category.
type CategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Validate checks that required fields are present.
func (r *CategoryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Type == "" {
		fields["type"] = msgRequired
	}

	return domain.FieldsError(fields)
}

// BudgetRequest represents the JSON body for creating or replacing a budget.
type BudgetRequest struct {
	CategoryID int64           `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Period     string          `json:"period"`
	StartDate  *string         `json:"start_date,omitempty"`
}

// Validate checks field formats.
func (r *BudgetRequest) Validate() error {
	fields := make(map[string]string)

	if r.CategoryID <= 0 {
		fields["category_id"] = msgRequired
	}
	if !r.Amount.IsPositive() {
		fields["amount"] = msgPositive
	}
	if r.Period == "" {
		fields["period"] = msgRequired
	}
	checkDate(fields, "start_date", r.StartDate)

	return domain.FieldsError(fields)
}

// BillRequest represents the JSON body for creating or replacing a bill.
type BillRequest struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	DueDate    string          `json:"due_date"`
	Frequency  string          `json:"frequency"`
	CategoryID *int64          `json:"category_id,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// Validate checks field formats.
func (r *BillRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if !r.Amount.IsPositive() {
		fields["amount"] = msgPositive
	}
	if r.DueDate == "" {
		fields["due_date"] = msgRequired
	} else {
		checkDate(fields, "due_date", &r.DueDate)
	}

	return domain.FieldsError(fields)
}

// PayBillRequest represents the optional JSON body for marking a bill paid.
type PayBillRequest struct {
	RecordTransaction bool   `json:"record_transaction"`
	GoalID            *int64 `json:"goal_id,omitempty"`
}

// Validate checks that a goal is only given with a transaction.
func (r *PayBillRequest) Validate() error {
	if r.GoalID != nil && !r.RecordTransaction {
		return domain.NewValidationError("goal_id", "requires record_transaction")
	}
	return nil
}

// RecurringRequest represents the JSON body for creating or replacing a
// recurring expense.
type RecurringRequest struct {
	GoalID     *int64          `json:"goal_id,omitempty"`
	CategoryID *int64          `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Frequency  string          `json:"frequency"`
	NextDate   string          `json:"next_date"`
	Active     *bool           `json:"active,omitempty"`
}

// Validate checks field formats.
func (r *RecurringRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if !r.Amount.IsPositive() {
		fields["amount"] = msgPositive
	}
	if r.Frequency == "" {
		fields["frequency"] = msgRequired
	}
	if r.NextDate == "" {
		fields["next_date"] = msgRequired
	} else {
		checkDate(fields, "next_date", &r.NextDate)
	}

	return domain.FieldsError(fields)
}

// ChatRequest represents a message to the advisor.
type ChatRequest struct {
	Message string `json:"message"`
}

// Validate checks that the message is not blank.
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return domain.NewValidationError("message", msgRequired)
	}
	return nil
}

// WiseConnectRequest carries a Wise personal API token.
type WiseConnectRequest struct {
	Token string `json:"token"`
}

// Validate checks that the token is present.
func (r *WiseConnectRequest) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return domain.NewValidationError("token", msgRequired)
	}
	return nil
}

// SyncRequest is the optional date range of a bank sync. Missing bounds
// default to the last 30 days.
type SyncRequest struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

// Validate checks the date formats.
func (r *SyncRequest) Validate() error {
	fields := make(map[string]string)
	checkDate(fields, "from", r.From)
	checkDate(fields, "to", r.To)
	return domain.FieldsError(fields)
}

// PlaidExchangeRequest carries the public token returned by Plaid Link.
type PlaidExchangeRequest struct {
	PublicToken string `json:"public_token"`
}

// Validate checks that the token is present.
func (r *PlaidExchangeRequest) Validate() error {
	if strings.TrimSpace(r.PublicToken) == "" {
		return domain.NewValidationError("public_token", msgRequired)
	}
	return nil
}
