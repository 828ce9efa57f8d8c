package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

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

// All repository methods scope reads and writes by user id. A row owned by
// another user is reported as domain.ErrNotFound. Unique constraint
// violations are reported as domain.ErrConflict.

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, u *user.User) (*user.User, error)
	GetUser(ctx context.Context, id int64) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	// GetUserByPhone looks up the owner of a normalized WhatsApp number.
	GetUserByPhone(ctx context.Context, phone string) (*user.User, error)
	UpdateUser(ctx context.Context, u *user.User) (*user.User, error)
}

// AmountConverter re-expresses an amount in a fixed target currency.
type AmountConverter func(amount decimal.Decimal) (decimal.Decimal, error)

// GoalRepository persists savings goals.
type GoalRepository interface {
	ListGoals(ctx context.Context, userID int64) ([]goal.Goal, error)
	GetGoal(ctx context.Context, userID, id int64) (*goal.Goal, error)
	CreateGoal(ctx context.Context, g *goal.Goal) (*goal.Goal, error)
	// UpdateGoal saves the editable fields. When the currency changes, the
	// balance and every linked goal amount are rewritten with convert in
	// the same transaction; a nil convert rejects the change.
	UpdateGoal(ctx context.Context, g *goal.Goal, convert AmountConverter) (*goal.Goal, error)
	// DeleteGoal removes the goal and its linked transactions.
	DeleteGoal(ctx context.Context, userID, id int64) error
}

// TransactionRepository persists transactions. Writes that touch a goal
// apply GoalAmount to the goal in the same database transaction.
type TransactionRepository interface {
	ListTransactions(ctx context.Context, userID int64, filter transaction.Filter) ([]transaction.Transaction, error)
	GetTransaction(ctx context.Context, userID, id int64) (*transaction.Transaction, error)
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error)
	// CreateTransactions inserts a batch atomically.
	CreateTransactions(ctx context.Context, txs []transaction.Transaction) ([]transaction.Transaction, error)
	// UpdateTransaction reverses the stored goal effect and applies the new one.
	UpdateTransaction(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error)
	// DeleteTransaction reverses the stored goal effect.
	DeleteTransaction(ctx context.Context, userID, id int64) error
	// ExistsOnDay reports a transaction with exactly this description on day.
	ExistsOnDay(ctx context.Context, userID int64, description string, day time.Time) (bool, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context, userID int64) ([]category.Category, error)
	GetCategory(ctx context.Context, userID, id int64) (*category.Category, error)
	CreateCategory(ctx context.Context, c *category.Category) (*category.Category, error)
	// CreateCategories inserts a batch atomically, used for default seeding.
	CreateCategories(ctx context.Context, cs []category.Category) ([]category.Category, error)
	UpdateCategory(ctx context.Context, c *category.Category) (*category.Category, error)
	DeleteCategory(ctx context.Context, userID, id int64) error
}

// BudgetRepository persists budgets.
type BudgetRepository interface {
	ListBudgets(ctx context.Context, userID int64) ([]budget.Budget, error)
	GetBudget(ctx context.Context, userID, id int64) (*budget.Budget, error)
	CreateBudget(ctx context.Context, b *budget.Budget) (*budget.Budget, error)
	UpdateBudget(ctx context.Context, b *budget.Budget) (*budget.Budget, error)
	DeleteBudget(ctx context.Context, userID, id int64) error
}

// BillRepository persists bills.
type BillRepository interface {
	ListBills(ctx context.Context, userID int64) ([]bill.Bill, error)
	// ListUnpaidBillsDueBy returns unpaid bills due on or before until, soonest first.
	ListUnpaidBillsDueBy(ctx context.Context, userID int64, until time.Time) ([]bill.Bill, error)
	GetBill(ctx context.Context, userID, id int64) (*bill.Bill, error)
	CreateBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error)
	UpdateBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error)
	DeleteBill(ctx context.Context, userID, id int64) error
	// RecordBillPayment saves the paid bill and, when tx is non-nil, inserts
	// the payment transaction atomically.
	RecordBillPayment(ctx context.Context, b *bill.Bill, tx *transaction.Transaction) (*transaction.Transaction, error)
}

// RecurringRepository persists recurring expense templates.
type RecurringRepository interface {
	ListRecurring(ctx context.Context, userID int64) ([]recurring.Expense, error)
	GetRecurring(ctx context.Context, userID, id int64) (*recurring.Expense, error)
	CreateRecurring(ctx context.Context, e *recurring.Expense) (*recurring.Expense, error)
	UpdateRecurring(ctx context.Context, e *recurring.Expense) (*recurring.Expense, error)
	DeleteRecurring(ctx context.Context, userID, id int64) error
	// ListDueRecurring returns active expenses of every user with NextDate on
	// or before today.
	ListDueRecurring(ctx context.Context, today time.Time) ([]recurring.Expense, error)
	// RecordRecurringRun saves the advanced expense and, when tx is non-nil,
	// inserts the materialized transaction atomically.
	RecordRecurringRun(ctx context.Context, e *recurring.Expense, tx *transaction.Transaction) (*transaction.Transaction, error)
}

// ChatRepository persists advisor conversations.
type ChatRepository interface {
	AppendMessage(ctx context.Context, m *chat.Message) (*chat.Message, error)
	// ListMessages returns the latest limit messages in chronological order.
	ListMessages(ctx context.Context, userID int64, limit int) ([]chat.Message, error)
	ClearMessages(ctx context.Context, userID int64) error
}

// IntegrationRepository persists provider connections.
type IntegrationRepository interface {
	UpsertConnection(ctx context.Context, c *integration.Connection) (*integration.Connection, error)
	GetConnection(ctx context.Context, userID int64, provider integration.Provider) (*integration.Connection, error)
	DeleteConnection(ctx context.Context, userID int64, provider integration.Provider) error
}

// Store is the full persistence port. The SQLite adapter implements it.
type Store interface {
	UserRepository
	GoalRepository
	TransactionRepository
	CategoryRepository
	BudgetRepository
	BillRepository
	RecurringRepository
	ChatRepository
	IntegrationRepository
	HealthChecker
}
