// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
//
// Money amounts are rendered as fixed two-decimal strings so clients never
// round-trip them through floating point.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain/analytics"
	"github.com/jsamuelsen11/moneygoal/internal/domain/bill"
	"github.com/jsamuelsen11/moneygoal/internal/domain/budget"
	"github.com/jsamuelsen11/moneygoal/internal/domain/category"
	"github.com/jsamuelsen11/moneygoal/internal/domain/chat"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
	"github.com/jsamuelsen11/moneygoal/internal/domain/recurring"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/domain/user"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func date(t time.Time) string {
	return t.Format(DateLayout)
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := date(*t)
	return &s
}

func optionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// mapSlice converts each element of in with fn.
func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

// UserResponse represents the signed-in user's profile and settings.
type UserResponse struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	BaseCurrency  string `json:"base_currency"`
	WhatsAppPhone string `json:"whatsapp_phone,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// ToUserResponse converts a domain User to an HTTP response DTO. The
// password hash is never exposed.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		BaseCurrency:  u.BaseCurrency,
		WhatsAppPhone: u.WhatsAppPhone,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}

// AuthResponse carries a bearer token for the signed-in user.
type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ToAuthResponse converts a ports.AuthResult to an HTTP response DTO.
func ToAuthResponse(res *ports.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     res.Token,
		TokenType: "Bearer",
		ExpiresAt: res.ExpiresAt.Format(time.RFC3339),
		User:      ToUserResponse(res.User),
	}
}

// GoalResponse represents a savings goal in HTTP responses.
type GoalResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	TargetAmount    string  `json:"target_amount"`
	CurrentAmount   string  `json:"current_amount"`
	Remaining       string  `json:"remaining"`
	ProgressPercent int     `json:"progress_percent"`
	Currency        string  `json:"currency"`
	Deadline        *string `json:"deadline,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ToGoalResponse converts a domain Goal to an HTTP response DTO.
func ToGoalResponse(g *goal.Goal) GoalResponse {
	return GoalResponse{
		ID:              g.ID,
		Name:            g.Name,
		Description:     g.Description,
		TargetAmount:    money(g.TargetAmount),
		CurrentAmount:   money(g.CurrentAmount),
		Remaining:       money(g.Remaining()),
		ProgressPercent: g.ProgressPercent(),
		Currency:        g.Currency,
		Deadline:        optionalDate(g.Deadline),
		Status:          g.Status.String(),
		CreatedAt:       g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       g.UpdatedAt.Format(time.RFC3339),
	}
}

// GoalListResponse represents a list of goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
	Count int            `json:"count"`
}

// ToGoalListResponse converts goals to an HTTP list response DTO.
func ToGoalListResponse(goals []goal.Goal) GoalListResponse {
	items := mapSlice(goals, ToGoalResponse)
	return GoalListResponse{Goals: items, Count: len(items)}
}

// GoalDetailResponse is a goal with its recent transactions.
type GoalDetailResponse struct {
	GoalResponse
	Transactions []TransactionResponse `json:"transactions"`
}

// ToGoalDetailResponse converts a ports.GoalDetail to an HTTP response DTO.
func ToGoalDetailResponse(d *ports.GoalDetail) GoalDetailResponse {
	return GoalDetailResponse{
		GoalResponse: ToGoalResponse(&d.Goal),
		Transactions: mapSlice(d.Transactions, ToTransactionResponse),
	}
}

// TransactionResponse represents a transaction in HTTP responses.
type TransactionResponse struct {
	ID          int64  `json:"id"`
	GoalID      *int64 `json:"goal_id,omitempty"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Source      string `json:"source"`
	ExternalID  string `json:"external_id,omitempty"`
	// GoalAmount is the signed effect on the goal, in the goal's currency.
	GoalAmount string `json:"goal_amount,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// ToTransactionResponse converts a domain Transaction to an HTTP response DTO.
func ToTransactionResponse(t *transaction.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID,
		GoalID:      t.GoalID,
		CategoryID:  t.CategoryID,
		Type:        t.Type.String(),
		Amount:      money(t.Amount),
		Currency:    t.Currency,
		Description: t.Description,
		Date:        date(t.Date),
		Source:      t.Source.String(),
		ExternalID:  t.ExternalID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.GoalID != nil {
		resp.GoalAmount = money(t.GoalAmount)
	}
	return resp
}

// TransactionListResponse represents a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionListResponse converts transactions to an HTTP list response DTO.
func ToTransactionListResponse(txs []transaction.Transaction) TransactionListResponse {
	items := mapSlice(txs, ToTransactionResponse)
	return TransactionListResponse{Transactions: items, Count: len(items)}
}

// CategoryResponse represents a category in HTTP responses.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// ToCategoryResponse converts a domain Category to an HTTP response DTO.
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Type:  c.Type.String(),
		Color: c.Color,
		Icon:  c.Icon,
	}
}

// CategoryListResponse represents a list of categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Count      int                `json:"count"`
}

// ToCategoryListResponse converts categories to an HTTP list response DTO.
func ToCategoryListResponse(cs []category.Category) CategoryListResponse {
	items := mapSlice(cs, ToCategoryResponse)
	return CategoryListResponse{Categories: items, Count: len(items)}
}

// BudgetResponse represents a budget in HTTP responses.
type BudgetResponse struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Period     string `json:"period"`
	StartDate  string `json:"start_date"`
}

// ToBudgetResponse converts a domain Budget to an HTTP response DTO.
func ToBudgetResponse(b *budget.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     money(b.Amount),
		Currency:   b.Currency,
		Period:     string(b.Period),
		StartDate:  date(b.StartDate),
	}
}

// BudgetListResponse represents a list of budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Count   int              `json:"count"`
}

// ToBudgetListResponse converts budgets to an HTTP list response DTO.
func ToBudgetListResponse(bs []budget.Budget) BudgetListResponse {
	items := mapSlice(bs, ToBudgetResponse)
	return BudgetListResponse{Budgets: items, Count: len(items)}
}

// BudgetStatusResponse is a budget evaluated against its current window.
// WindowEnd is exclusive.
type BudgetStatusResponse struct {
	Budget       BudgetResponse `json:"budget"`
	CategoryName string         `json:"category_name"`
	WindowStart  string         `json:"window_start"`
	WindowEnd    string         `json:"window_end"`
	Spent        string         `json:"spent"`
	Remaining    string         `json:"remaining"`
	PercentUsed  float64        `json:"percent_used"`
	OverBudget   bool           `json:"over_budget"`
}

// ToBudgetStatusResponse converts a ports.BudgetStatus to an HTTP response DTO.
func ToBudgetStatusResponse(s *ports.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		Budget:       ToBudgetResponse(&s.Budget),
		CategoryName: s.CategoryName,
		WindowStart:  date(s.WindowStart),
		WindowEnd:    date(s.WindowEnd),
		Spent:        money(s.Status.Spent),
		Remaining:    money(s.Status.Remaining),
		PercentUsed:  s.Status.PercentUsed,
		OverBudget:   s.Status.OverBudget,
	}
}

// BudgetStatusListResponse represents the status of every budget.
type BudgetStatusListResponse struct {
	Budgets []BudgetStatusResponse `json:"budgets"`
	Count   int                    `json:"count"`
}

// ToBudgetStatusListResponse converts budget statuses to an HTTP list response DTO.
func ToBudgetStatusListResponse(ss []ports.BudgetStatus) BudgetStatusListResponse {
	items := mapSlice(ss, ToBudgetStatusResponse)
	return BudgetStatusListResponse{Budgets: items, Count: len(items)}
}

// BillResponse represents a bill in HTTP responses.
type BillResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Amount     string  `json:"amount"`
	Currency   string  `json:"currency"`
	DueDate    string  `json:"due_date"`
	Frequency  string  `json:"frequency"`
	CategoryID *int64  `json:"category_id,omitempty"`
	IsPaid     bool    `json:"is_paid"`
	LastPaidAt *string `json:"last_paid_at,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// ToBillResponse converts a domain Bill to an HTTP response DTO.
func ToBillResponse(b *bill.Bill) BillResponse {
	return BillResponse{
		ID:         b.ID,
		Name:       b.Name,
		Amount:     money(b.Amount),
		Currency:   b.Currency,
		DueDate:    date(b.DueDate),
		Frequency:  b.Frequency.String(),
		CategoryID: b.CategoryID,
		IsPaid:     b.IsPaid,
		LastPaidAt: optionalTimestamp(b.LastPaidAt),
		Notes:      b.Notes,
	}
}

// BillListResponse represents a list of bills.
type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Count int            `json:"count"`
}

// ToBillListResponse converts bills to an HTTP list response DTO.
func ToBillListResponse(bs []bill.Bill) BillListResponse {
	items := mapSlice(bs, ToBillResponse)
	return BillListResponse{Bills: items, Count: len(items)}
}

// BillPaymentResponse is the outcome of paying a bill.
type BillPaymentResponse struct {
	Bill        BillResponse         `json:"bill"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// ToBillPaymentResponse converts a ports.BillPayment to an HTTP response DTO.
func ToBillPaymentResponse(p *ports.BillPayment) BillPaymentResponse {
	resp := BillPaymentResponse{Bill: ToBillResponse(&p.Bill)}
	if p.Transaction != nil {
		tx := ToTransactionResponse(p.Transaction)
		resp.Transaction = &tx
	}
	return resp
}

// RecurringResponse represents a recurring expense in HTTP responses.
type RecurringResponse struct {
	ID         int64   `json:"id"`
	GoalID     *int64  `json:"goal_id,omitempty"`
	CategoryID *int64  `json:"category_id,omitempty"`
	Name       string  `json:"name"`
	Amount     string  `json:"amount"`
	Currency   string  `json:"currency"`
	Frequency  string  `json:"frequency"`
	NextDate   string  `json:"next_date"`
	Active     bool    `json:"active"`
	LastRunAt  *string `json:"last_run_at,omitempty"`
}

// ToRecurringResponse converts a domain Expense to an HTTP response DTO.
func ToRecurringResponse(e *recurring.Expense) RecurringResponse {
	return RecurringResponse{
		ID:         e.ID,
		GoalID:     e.GoalID,
		CategoryID: e.CategoryID,
		Name:       e.Name,
		Amount:     money(e.Amount),
		Currency:   e.Currency,
		Frequency:  e.Frequency.String(),
		NextDate:   date(e.NextDate),
		Active:     e.Active,
		LastRunAt:  optionalTimestamp(e.LastRunAt),
	}
}

// RecurringListResponse represents a list of recurring expenses.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurring"`
	Count     int                 `json:"count"`
}

// ToRecurringListResponse converts recurring expenses to an HTTP list response DTO.
func ToRecurringListResponse(es []recurring.Expense) RecurringListResponse {
	items := mapSlice(es, ToRecurringResponse)
	return RecurringListResponse{Recurring: items, Count: len(items)}
}

// ChatMessageResponse represents one advisor conversation turn.
type ChatMessageResponse struct {
	ID        int64  `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ToChatMessageResponse converts a domain Message to an HTTP response DTO.
func ToChatMessageResponse(m *chat.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// ChatHistoryResponse lists conversation turns, oldest first.
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	Count    int                   `json:"count"`
}

// ToChatHistoryResponse converts messages to an HTTP list response DTO.
func ToChatHistoryResponse(ms []chat.Message) ChatHistoryResponse {
	items := mapSlice(ms, ToChatMessageResponse)
	return ChatHistoryResponse{Messages: items, Count: len(items)}
}

// SummaryResponse represents income and spending totals for a range.
type SummaryResponse struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Currency    string  `json:"currency"`
	Income      string  `json:"income"`
	Expense     string  `json:"expense"`
	Net         string  `json:"net"`
	SavingsRate float64 `json:"savings_rate"`
	Count       int     `json:"count"`
}

// ToSummaryResponse converts an analytics Summary to an HTTP response DTO.
func ToSummaryResponse(s *analytics.Summary, from, to time.Time) SummaryResponse {
	return SummaryResponse{
		From:        date(from),
		To:          date(to),
		Currency:    s.Currency,
		Income:      money(s.Income),
		Expense:     money(s.Expense),
		Net:         money(s.Net),
		SavingsRate: s.SavingsRate,
		Count:       s.Count,
	}
}

// CategorySpendResponse is one slice of the spending breakdown.
type CategorySpendResponse struct {
	CategoryID *int64  `json:"category_id,omitempty"`
	Name       string  `json:"name"`
	Amount     string  `json:"amount"`
	Percent    float64 `json:"percent"`
}

// SpendingResponse is the spending breakdown by category.
type SpendingResponse struct {
	Categories []CategorySpendResponse `json:"categories"`
}

// ToSpendingResponse converts category spends to an HTTP response DTO.
func ToSpendingResponse(cs []analytics.CategorySpend) SpendingResponse {
	return SpendingResponse{
		Categories: mapSlice(cs, func(c *analytics.CategorySpend) CategorySpendResponse {
			return CategorySpendResponse{
				CategoryID: c.CategoryID,
				Name:       c.Name,
				Amount:     money(c.Amount),
				Percent:    c.Percent,
			}
		}),
	}
}

// MonthTotalResponse is one month of the trend.
type MonthTotalResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// TrendResponse is the monthly income and expense trend, oldest first.
type TrendResponse struct {
	Months []MonthTotalResponse `json:"months"`
}

// ToTrendResponse converts month totals to an HTTP response DTO.
func ToTrendResponse(ms []analytics.MonthTotal) TrendResponse {
	return TrendResponse{
		Months: mapSlice(ms, func(m *analytics.MonthTotal) MonthTotalResponse {
			return MonthTotalResponse{
				Month:   m.Month,
				Income:  money(m.Income),
				Expense: money(m.Expense),
				Net:     money(m.Net),
			}
		}),
	}
}

// ForecastResponse is a goal projection with an optional narrative.
type ForecastResponse struct {
	Goal                GoalResponse `json:"goal"`
	MonthlyContribution string       `json:"monthly_contribution"`
	MonthsRemaining     int          `json:"months_remaining"`
	ProjectedDate       *string      `json:"projected_date,omitempty"`
	RequiredMonthly     string       `json:"required_monthly,omitempty"`
	OnTrack             bool         `json:"on_track"`
	Narrative           string       `json:"narrative,omitempty"`
}

// ToForecastResponse converts a ports.GoalForecast to an HTTP response DTO.
func ToForecastResponse(f *ports.GoalForecast) ForecastResponse {
	resp := ForecastResponse{
		Goal:                ToGoalResponse(&f.Goal),
		MonthlyContribution: money(f.Forecast.MonthlyContribution),
		MonthsRemaining:     f.Forecast.MonthsRemaining,
		ProjectedDate:       optionalDate(f.Forecast.ProjectedDate),
		OnTrack:             f.Forecast.OnTrack,
		Narrative:           f.Narrative,
	}
	if !f.Forecast.RequiredMonthly.IsZero() {
		resp.RequiredMonthly = money(f.Forecast.RequiredMonthly)
	}
	return resp
}

// ConnectionResponse describes a bank integration. Credentials are never
// returned.
type ConnectionResponse struct {
	Provider     string  `json:"provider"`
	ExternalID   string  `json:"external_id"`
	LastSyncedAt *string `json:"last_synced_at,omitempty"`
	ConnectedAt  string  `json:"connected_at"`
}

// ToConnectionResponse converts an integration Connection to an HTTP response DTO.
func ToConnectionResponse(c *integration.Connection) ConnectionResponse {
	return ConnectionResponse{
		Provider:     string(c.Provider),
		ExternalID:   c.ExternalID,
		LastSyncedAt: optionalTimestamp(c.LastSyncedAt),
		ConnectedAt:  c.CreatedAt.Format(time.RFC3339),
	}
}

// BalanceResponse is one account balance.
type BalanceResponse struct {
	ID       int64  `json:"id"`
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// BalanceListResponse lists account balances.
type BalanceListResponse struct {
	Balances []BalanceResponse `json:"balances"`
}

// ToBalanceListResponse converts balances to an HTTP list response DTO.
func ToBalanceListResponse(bs []integration.Balance) BalanceListResponse {
	return BalanceListResponse{
		Balances: mapSlice(bs, func(b *integration.Balance) BalanceResponse {
			return BalanceResponse{ID: b.ID, Currency: b.Currency, Amount: money(b.Amount)}
		}),
	}
}

// SyncResultResponse counts the outcome of a bank sync.
type SyncResultResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// ToSyncResultResponse converts an integration SyncResult to an HTTP response DTO.
func ToSyncResultResponse(r *integration.SyncResult) SyncResultResponse {
	return SyncResultResponse{
		Imported: r.Imported,
		Skipped:  r.Skipped,
		Failed:   r.Failed,
		Errors:   r.Errors,
	}
}

// PlaidStatusResponse reports whether Plaid is configured on the server.
type PlaidStatusResponse struct {
	Enabled bool `json:"enabled"`
}

// LinkTokenResponse carries a Plaid Link token.
type LinkTokenResponse struct {
	LinkToken string `json:"link_token"`
}

// ImportRowResponse is one parsed CSV row.
type ImportRowResponse struct {
	Line        int    `json:"line"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Currency    string `json:"currency"`
	Category    string `json:"category,omitempty"`
	Duplicate   bool   `json:"duplicate"`
}

// ImportRowErrorResponse is a CSV row that could not be used.
type ImportRowErrorResponse struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func toImportErrors(es []ports.ImportRowError) []ImportRowErrorResponse {
	return mapSlice(es, func(e *ports.ImportRowError) ImportRowErrorResponse {
		return ImportRowErrorResponse{Line: e.Line, Message: e.Message}
	})
}

// ImportPreviewResponse is the dry run of a CSV import.
type ImportPreviewResponse struct {
	Columns []string                 `json:"columns"`
	Rows    []ImportRowResponse      `json:"rows"`
	Total   int                      `json:"total"`
	Errors  []ImportRowErrorResponse `json:"errors"`
}

// ToImportPreviewResponse converts a ports.ImportPreview to an HTTP response DTO.
func ToImportPreviewResponse(p *ports.ImportPreview) ImportPreviewResponse {
	return ImportPreviewResponse{
		Columns: p.Columns,
		Rows: mapSlice(p.Rows, func(r *ports.ImportRow) ImportRowResponse {
			return ImportRowResponse{
				Line:        r.Line,
				Date:        date(r.Date),
				Description: r.Description,
				Amount:      money(r.Amount),
				Type:        r.Type.String(),
				Currency:    r.Currency,
				Category:    r.Category,
				Duplicate:   r.Duplicate,
			}
		}),
		Total:  p.Total,
		Errors: toImportErrors(p.Errors),
	}
}

// ImportResultResponse counts the outcome of a CSV import.
type ImportResultResponse struct {
	BatchID  string                   `json:"batch_id"`
	Imported int                      `json:"imported"`
	Skipped  int                      `json:"skipped"`
	Failed   int                      `json:"failed"`
	Errors   []ImportRowErrorResponse `json:"errors"`
}

// ToImportResultResponse converts a ports.ImportResult to an HTTP response DTO.
func ToImportResultResponse(r *ports.ImportResult) ImportResultResponse {
	return ImportResultResponse{
		BatchID:  r.BatchID,
		Imported: r.Imported,
		Skipped:  r.Skipped,
		Failed:   r.Failed,
		Errors:   toImportErrors(r.Errors),
	}
}
