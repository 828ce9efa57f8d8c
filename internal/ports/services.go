package ports

import (
	"context"
	"io"
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
)

// AuthService registers users, issues tokens and manages settings.
type AuthService interface {
	// Register creates an account and returns a signed token.
	// Returns domain.ErrConflict if the email is taken.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)

	// Login verifies credentials. Returns domain.ErrUnauthorized on mismatch.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	GetSettings(ctx context.Context, userID int64) (*user.User, error)
	UpdateSettings(ctx context.Context, userID int64, in SettingsUpdate) (*user.User, error)
}

// RegisterInput carries registration fields.
type RegisterInput struct {
	Email        string
	Name         string
	Password     string
	BaseCurrency string
}

// SettingsUpdate is a partial update; nil fields are left unchanged.
type SettingsUpdate struct {
	Name          *string
	BaseCurrency  *string
	WhatsAppPhone *string
}

// AuthResult is a signed-in user and bearer token.
type AuthResult struct {
	User      *user.User
	Token     string
	ExpiresAt time.Time
}

// GoalService defines the service port for savings goals.
type GoalService interface {
	ListGoals(ctx context.Context, userID int64) ([]goal.Goal, error)

	// GetGoal returns a goal with its most recent transactions.
	// Returns domain.ErrNotFound if the goal does not exist.
	GetGoal(ctx context.Context, userID, id int64) (*GoalDetail, error)

	// CreateGoal returns domain.ErrValidation if the goal fails validation.
	CreateGoal(ctx context.Context, g *goal.Goal) (*goal.Goal, error)

	UpdateGoal(ctx context.Context, userID, id int64, g *goal.Goal) (*goal.Goal, error)

	// DeleteGoal removes the goal together with its transactions.
	DeleteGoal(ctx context.Context, userID, id int64) error
}

// GoalDetail is a goal with recent activity.
type GoalDetail struct {
	Goal         goal.Goal
	Transactions []transaction.Transaction
}

// TransactionService defines the service port for transactions.
type TransactionService interface {
	ListTransactions(ctx context.Context, userID int64, filter transaction.Filter) ([]transaction.Transaction, error)
	GetTransaction(ctx context.Context, userID, id int64) (*transaction.Transaction, error)

	// CreateTransaction stores tx and moves the linked goal by the signed
	// amount, converted to the goal currency when they differ.
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error)

	UpdateTransaction(ctx context.Context, userID, id int64, tx *transaction.Transaction) (*transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

// CategoryService defines the service port for categories.
type CategoryService interface {
	// ListCategories seeds the default set on first access.
	ListCategories(ctx context.Context, userID int64) ([]category.Category, error)
	CreateCategory(ctx context.Context, c *category.Category) (*category.Category, error)
	UpdateCategory(ctx context.Context, userID, id int64, c *category.Category) (*category.Category, error)
	DeleteCategory(ctx context.Context, userID, id int64) error
}

// BudgetService defines the service port for budgets.
type BudgetService interface {
	ListBudgets(ctx context.Context, userID int64) ([]budget.Budget, error)
	GetBudget(ctx context.Context, userID, id int64) (*budget.Budget, error)
	CreateBudget(ctx context.Context, b *budget.Budget) (*budget.Budget, error)
	UpdateBudget(ctx context.Context, userID, id int64, b *budget.Budget) (*budget.Budget, error)
	DeleteBudget(ctx context.Context, userID, id int64) error

	// ListStatus evaluates every budget against spending in its current window.
	ListStatus(ctx context.Context, userID int64, now time.Time) ([]BudgetStatus, error)
}

// BudgetStatus pairs a budget with its evaluation.
type BudgetStatus struct {
	Budget       budget.Budget
	CategoryName string
	WindowStart  time.Time
	WindowEnd    time.Time
	Status       budget.Status
}

// BillService defines the service port for bills.
type BillService interface {
	ListBills(ctx context.Context, userID int64) ([]bill.Bill, error)
	GetBill(ctx context.Context, userID, id int64) (*bill.Bill, error)
	CreateBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error)
	UpdateBill(ctx context.Context, userID, id int64, b *bill.Bill) (*bill.Bill, error)
	DeleteBill(ctx context.Context, userID, id int64) error

	// Upcoming returns unpaid bills due within days, overdue ones included.
	Upcoming(ctx context.Context, userID int64, days int) ([]bill.Bill, error)

	// MarkPaid records a payment and optionally an expense transaction.
	MarkPaid(ctx context.Context, userID, id int64, opts PayOptions) (*BillPayment, error)
}

// PayOptions controls MarkPaid.
type PayOptions struct {
	RecordTransaction bool
	GoalID            *int64
}

// BillPayment is the outcome of MarkPaid.
type BillPayment struct {
	Bill        bill.Bill
	Transaction *transaction.Transaction
}

// RecurringService defines the service port for recurring expenses.
type RecurringService interface {
	ListRecurring(ctx context.Context, userID int64) ([]recurring.Expense, error)
	GetRecurring(ctx context.Context, userID, id int64) (*recurring.Expense, error)
	CreateRecurring(ctx context.Context, e *recurring.Expense) (*recurring.Expense, error)
	UpdateRecurring(ctx context.Context, userID, id int64, e *recurring.Expense) (*recurring.Expense, error)
	DeleteRecurring(ctx context.Context, userID, id int64) error

	// ProcessDue materializes every due expense of every user for today.
	// Per-expense failures are collected, not returned.
	ProcessDue(ctx context.Context, today time.Time) (*RecurringRunResult, error)
}

// RecurringRunResult summarizes one scheduler run.
type RecurringRunResult struct {
	Due      int
	Created  int
	Skipped  int
	Failures []RecurringFailure
}

// RecurringFailure records one expense that could not be processed.
type RecurringFailure struct {
	ExpenseID int64
	Err       error
}

// ChatService defines the service port for the AI advisor.
type ChatService interface {
	// SendMessage stores text, asks the advisor and returns its stored reply.
	SendMessage(ctx context.Context, userID int64, text string) (*chat.Message, error)
	History(ctx context.Context, userID int64, limit int) ([]chat.Message, error)
	Clear(ctx context.Context, userID int64) error
}

// AnalyticsService defines the service port for reports. All amounts are
// in the user's base currency.
type AnalyticsService interface {
	Summary(ctx context.Context, userID int64, from, to time.Time) (*analytics.Summary, error)
	SpendingByCategory(ctx context.Context, userID int64, from, to time.Time) ([]analytics.CategorySpend, error)
	MonthlyTrend(ctx context.Context, userID int64, months int) ([]analytics.MonthTotal, error)

	// GoalForecast projects a goal and adds an LLM narrative when available.
	GoalForecast(ctx context.Context, userID, goalID int64) (*GoalForecast, error)
}

// GoalForecast is a goal projection.
type GoalForecast struct {
	Goal      goal.Goal
	Forecast  goal.Forecast
	Narrative string
}

// WiseService defines the service port for the Wise integration.
type WiseService interface {
	// Connect validates token and stores it with the personal profile id.
	Connect(ctx context.Context, userID int64, token string) (*integration.Connection, error)
	Disconnect(ctx context.Context, userID int64) error
	Balances(ctx context.Context, userID int64) ([]integration.Balance, error)

	// Sync imports statement lines in [from, to], skipping duplicates.
	Sync(ctx context.Context, userID int64, from, to time.Time) (*integration.SyncResult, error)
}

// PlaidService defines the service port for the Plaid integration. Every
// method returns domain.ErrUnavailable when Plaid is not configured.
type PlaidService interface {
	Enabled() bool
	CreateLinkToken(ctx context.Context, userID int64) (string, error)
	ExchangePublicToken(ctx context.Context, userID int64, publicToken string) (*integration.Connection, error)
	Sync(ctx context.Context, userID int64) (*integration.SyncResult, error)
	Disconnect(ctx context.Context, userID int64) error
}

// ImportService defines the service port for bank CSV files.
type ImportService interface {
	// Preview parses the file without writing anything.
	Preview(ctx context.Context, userID int64, r io.Reader, opts ImportOptions) (*ImportPreview, error)

	// Import parses and stores the file, skipping duplicates.
	Import(ctx context.Context, userID int64, r io.Reader, opts ImportOptions) (*ImportResult, error)
}

// ImportOptions controls CSV parsing and storage.
type ImportOptions struct {
	// Currency applies to rows without a currency column.
	Currency string
	GoalID   *int64
	// PreviewRows caps the rows returned by Preview.
	PreviewRows int
}

// ImportRow is one parsed CSV line.
type ImportRow struct {
	Line        int
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        transaction.Type
	Currency    string
	Category    string
	Duplicate   bool
}

// ImportRowError is a CSV line that could not be used.
type ImportRowError struct {
	Line    int
	Message string
}

// ImportPreview is the dry-run result of a CSV file.
type ImportPreview struct {
	Columns []string
	Rows    []ImportRow
	Total   int
	Errors  []ImportRowError
}

// ImportResult counts the outcome of an import.
type ImportResult struct {
	BatchID  string
	Imported int
	Skipped  int
	Failed   int
	Errors   []ImportRowError
}

// WhatsAppService handles inbound messages from WhatsApp and Twilio.
type WhatsAppService interface {
	// VerifyWebhook answers the Cloud API subscription handshake.
	// Returns domain.ErrForbidden when the token does not match.
	VerifyWebhook(mode, token, challenge string) (string, error)

	// HandleMessage processes one inbound text and sends a reply.
	HandleMessage(ctx context.Context, msg InboundMessage) error
}

// Messaging channels.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelTwilio   = "twilio"
)

// InboundMessage is a channel-neutral inbound text.
type InboundMessage struct {
	// Channel selects the reply sender ("whatsapp" or "twilio").
	Channel   string
	From      string
	Text      string
	MessageID string
}
