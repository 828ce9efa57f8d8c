package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/recurring"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/platform/telemetry"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Compile-time check that RecurringService implements ports.RecurringService.
var _ ports.RecurringService = (*RecurringService)(nil)

// RecurringService implements ports.RecurringService.
type RecurringService struct {
	expenses ports.RecurringRepository
	txs      ports.TransactionRepository
	linker   goalLinker
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewRecurringService creates a RecurringService. metrics may be nil.
func NewRecurringService(expenses ports.RecurringRepository, txs ports.TransactionRepository,
	goals ports.GoalRepository, converter ports.CurrencyConverter, metrics *telemetry.Metrics,
	logger *slog.Logger,
) *RecurringService {
	return &RecurringService{
		expenses: expenses,
		txs:      txs,
		linker:   goalLinker{goals: goals, converter: converter},
		metrics:  metrics,
		logger:   orDiscard(logger),
	}
}

// ListRecurring returns the user's recurring expenses.
func (s *RecurringService) ListRecurring(ctx context.Context, userID int64) ([]recurring.Expense, error) {
	s.logger.InfoContext(ctx, "listing recurring expenses", slog.Int64("user_id", userID))

	es, err := s.expenses.ListRecurring(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list recurring expenses",
			slog.String("operation", "ListRecurring"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return es, nil
}

// GetRecurring returns one recurring expense.
func (s *RecurringService) GetRecurring(ctx context.Context, userID, id int64) (*recurring.Expense, error) {
	e, err := s.expenses.GetRecurring(ctx, userID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch recurring expense",
			slog.String("operation", "GetRecurring"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return e, nil
}

// CreateRecurring validates and stores a template. New templates are active.
func (s *RecurringService) CreateRecurring(ctx context.Context, e *recurring.Expense) (*recurring.Expense, error) {
	s.logger.InfoContext(ctx, "creating recurring expense", slog.String("name", e.Name))

	e.Active = true
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.NextDate = domain.Day(e.NextDate)

	created, err := s.expenses.CreateRecurring(ctx, e)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create recurring expense",
			slog.String("operation", "CreateRecurring"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateRecurring replaces a template's fields, including Active. The run
// history is kept.
func (s *RecurringService) UpdateRecurring(ctx context.Context, userID, id int64, e *recurring.Expense) (*recurring.Expense, error) {
	s.logger.InfoContext(ctx, "updating recurring expense", slog.Int64("id", id))

	stored, err := s.expenses.GetRecurring(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	e.ID = id
	e.UserID = userID
	e.LastRunAt = stored.LastRunAt
	if domain.SameDay(e.NextDate, stored.NextDate) {
		e.AnchorDay = stored.AnchorDay
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.NextDate = domain.Day(e.NextDate)

	updated, err := s.expenses.UpdateRecurring(ctx, e)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update recurring expense",
			slog.String("operation", "UpdateRecurring"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteRecurring removes a template. Transactions it created are kept.
func (s *RecurringService) DeleteRecurring(ctx context.Context, userID, id int64) error {
	s.logger.InfoContext(ctx, "deleting recurring expense", slog.Int64("id", id))

	if err := s.expenses.DeleteRecurring(ctx, userID, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete recurring expense",
			slog.String("operation", "DeleteRecurring"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ProcessDue materializes every due expense into a transaction dated today
// and advances it past today. An expense whose description already has a
// transaction today is advanced without a new transaction.
func (s *RecurringService) ProcessDue(ctx context.Context, today time.Time) (*ports.RecurringRunResult, error) {
	day := domain.Day(today)
	s.logger.InfoContext(ctx, "processing recurring expenses", slog.String("date", day.Format(time.DateOnly)))

	due, err := s.expenses.ListDueRecurring(ctx, day)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list due recurring expenses",
			slog.String("operation", "ProcessDue"),
			slog.Any("error", err),
		)
		return nil, err
	}

	result := &ports.RecurringRunResult{Due: len(due)}
	for i := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		e := &due[i]
		created, err := s.materialize(ctx, e, day)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to process recurring expense",
				slog.String("operation", "ProcessDue"),
				slog.Int64("expense_id", e.ID),
				slog.Int64("user_id", e.UserID),
				slog.Any("error", err),
			)
			result.Failures = append(result.Failures, ports.RecurringFailure{ExpenseID: e.ID, Err: err})
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	s.record(ctx, result)
	s.logger.InfoContext(ctx, "recurring expenses processed",
		slog.Int("due", result.Due),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", len(result.Failures)),
	)
	return result, nil
}

func (s *RecurringService) materialize(ctx context.Context, e *recurring.Expense, day time.Time) (bool, error) {
	exists, err := s.txs.ExistsOnDay(ctx, e.UserID, e.Name, day)
	if err != nil {
		return false, err
	}

	var tx *transaction.Transaction
	if !exists {
		t := e.ToTransaction(day)
		if err := s.linker.link(ctx, &t); err != nil {
			return false, err
		}
		tx = &t
	}

	e.Advance(day)
	if _, err := s.expenses.RecordRecurringRun(ctx, e, tx); err != nil {
		return false, err
	}
	return tx != nil, nil
}

func (s *RecurringService) record(ctx context.Context, r *ports.RecurringRunResult) {
	if s.metrics == nil {
		return
	}
	add := func(n int, result string) {
		if n == 0 {
			return
		}
		s.metrics.RecurringMaterialized.Add(ctx, int64(n), metric.WithAttributes(
			telemetry.AttrResult.String(result),
		))
	}
	add(r.Created, "created")
	add(r.Skipped, "skipped")
	add(len(r.Failures), "failed")
}
