package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/app/fanout"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/budget"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// maxBudgetWorkers bounds concurrent budget evaluations.
const maxBudgetWorkers = 4

// Compile-time check that BudgetService implements ports.BudgetService.
var _ ports.BudgetService = (*BudgetService)(nil)

// BudgetService implements ports.BudgetService.
type BudgetService struct {
	budgets    ports.BudgetRepository
	categories ports.CategoryRepository
	txs        ports.TransactionRepository
	converter  ports.CurrencyConverter
	logger     *slog.Logger
	now        func() time.Time
}

// NewBudgetService creates a BudgetService.
func NewBudgetService(budgets ports.BudgetRepository, categories ports.CategoryRepository,
	txs ports.TransactionRepository, converter ports.CurrencyConverter, logger *slog.Logger,
) *BudgetService {
	return &BudgetService{
		budgets:    budgets,
		categories: categories,
		txs:        txs,
		converter:  converter,
		logger:     orDiscard(logger),
		now:        time.Now,
	}
}

// ListBudgets returns the user's budgets.
func (s *BudgetService) ListBudgets(ctx context.Context, userID int64) ([]budget.Budget, error) {
	s.logger.InfoContext(ctx, "listing budgets", slog.Int64("user_id", userID))

	bs, err := s.budgets.ListBudgets(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list budgets",
			slog.String("operation", "ListBudgets"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return bs, nil
}

// GetBudget returns one budget.
func (s *BudgetService) GetBudget(ctx context.Context, userID, id int64) (*budget.Budget, error) {
	b, err := s.budgets.GetBudget(ctx, userID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch budget",
			slog.String("operation", "GetBudget"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return b, nil
}

// CreateBudget validates and stores a budget on an expense category. A zero
// StartDate starts the budget at the beginning of the current month.
func (s *BudgetService) CreateBudget(ctx context.Context, b *budget.Budget) (*budget.Budget, error) {
	s.logger.InfoContext(ctx, "creating budget", slog.Int64("category_id", b.CategoryID))

	if err := s.prepare(ctx, b); err != nil {
		return nil, err
	}

	created, err := s.budgets.CreateBudget(ctx, b)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create budget",
			slog.String("operation", "CreateBudget"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateBudget replaces a budget's fields.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID, id int64, b *budget.Budget) (*budget.Budget, error) {
	s.logger.InfoContext(ctx, "updating budget", slog.Int64("id", id))

	b.ID = id
	b.UserID = userID
	if err := s.prepare(ctx, b); err != nil {
		return nil, err
	}

	updated, err := s.budgets.UpdateBudget(ctx, b)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update budget",
			slog.String("operation", "UpdateBudget"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteBudget removes a budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, id int64) error {
	s.logger.InfoContext(ctx, "deleting budget", slog.Int64("id", id))

	if err := s.budgets.DeleteBudget(ctx, userID, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete budget",
			slog.String("operation", "DeleteBudget"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ListStatus evaluates every budget against the expenses of its category in
// the window containing now. Budgets are evaluated concurrently.
func (s *BudgetService) ListStatus(ctx context.Context, userID int64, now time.Time) ([]ports.BudgetStatus, error) {
	s.logger.InfoContext(ctx, "evaluating budgets", slog.Int64("user_id", userID))

	bs, err := s.budgets.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	cs, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := categoryNames(cs)

	results := fanout.Run(ctx, maxBudgetWorkers, bs, func(ctx context.Context, b budget.Budget) (ports.BudgetStatus, error) {
		return s.evaluate(ctx, b, names[b.CategoryID], now)
	})

	statuses := make([]ports.BudgetStatus, 0, len(results))
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			s.logger.ErrorContext(ctx, "failed to evaluate budget",
				slog.String("operation", "ListStatus"),
				slog.Int64("budget_id", bs[i].ID),
				slog.Any("error", r.Err),
			)
			errs = append(errs, fmt.Errorf("budget %d: %w", bs[i].ID, r.Err))
			continue
		}
		statuses = append(statuses, r.Value)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return statuses, nil
}

func (s *BudgetService) evaluate(ctx context.Context, b budget.Budget, categoryName string, now time.Time) (ports.BudgetStatus, error) {
	start, end := b.Window(now)
	last := end.AddDate(0, 0, -1)
	categoryID := b.CategoryID

	txs, err := s.txs.ListTransactions(ctx, b.UserID, transaction.Filter{
		CategoryID: &categoryID,
		Type:       transaction.TypeExpense,
		From:       &start,
		To:         &last,
	})
	if err != nil {
		return ports.BudgetStatus{}, err
	}

	spent, err := sumIn(ctx, s.converter, txs, b.Currency)
	if err != nil {
		return ports.BudgetStatus{}, err
	}

	return ports.BudgetStatus{
		Budget:       b,
		CategoryName: categoryName,
		WindowStart:  start,
		WindowEnd:    end,
		Status:       b.Evaluate(spent),
	}, nil
}

func (s *BudgetService) prepare(ctx context.Context, b *budget.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	c, err := s.categories.GetCategory(ctx, b.UserID, b.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("category_id", "category not found")
		}
		return err
	}
	if c.Type != transaction.TypeExpense {
		return domain.NewValidationError("category_id", "must be an expense category")
	}
	if b.StartDate.IsZero() {
		b.StartDate = domain.MonthStart(s.now())
	}
	b.StartDate = domain.Day(b.StartDate)
	return nil
}

// sumIn totals the unsigned amounts of txs in currency. Amounts are summed
// per source currency first so each currency is converted once.
func sumIn(ctx context.Context, converter ports.CurrencyConverter, txs []transaction.Transaction, currency string) (decimal.Decimal, error) {
	byCurrency := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		byCurrency[tx.Currency] = byCurrency[tx.Currency].Add(tx.Amount)
	}

	total := decimal.Zero
	for from, amount := range byCurrency {
		if from == currency {
			total = total.Add(amount)
			continue
		}
		converted, err := converter.Convert(ctx, amount, from, currency)
		if err != nil {
			return decimal.Zero, fmt.Errorf("converting %s to %s: %w", from, currency, err)
		}
		total = total.Add(converted)
	}
	return total, nil
}
