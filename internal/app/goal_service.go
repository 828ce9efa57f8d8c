package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// recentGoalTransactions caps the activity returned with a goal.
const recentGoalTransactions = 10

// Compile-time check that GoalService implements ports.GoalService.
var _ ports.GoalService = (*GoalService)(nil)

// GoalService implements ports.GoalService.
type GoalService struct {
	goals     ports.GoalRepository
	txs       ports.TransactionRepository
	converter ports.CurrencyConverter
	logger    *slog.Logger
}

// NewGoalService creates a GoalService.
func NewGoalService(goals ports.GoalRepository, txs ports.TransactionRepository,
	converter ports.CurrencyConverter, logger *slog.Logger,
) *GoalService {
	return &GoalService{goals: goals, txs: txs, converter: converter, logger: orDiscard(logger)}
}

// ListGoals returns the user's goals, newest first.
func (s *GoalService) ListGoals(ctx context.Context, userID int64) ([]goal.Goal, error) {
	s.logger.InfoContext(ctx, "listing goals", slog.Int64("user_id", userID))

	goals, err := s.goals.ListGoals(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list goals",
			slog.String("operation", "ListGoals"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return goals, nil
}

// GetGoal returns a goal with its most recent transactions.
func (s *GoalService) GetGoal(ctx context.Context, userID, id int64) (*ports.GoalDetail, error) {
	s.logger.InfoContext(ctx, "fetching goal", slog.Int64("id", id))

	g, err := s.goals.GetGoal(ctx, userID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch goal",
			slog.String("operation", "GetGoal"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	txs, err := s.txs.ListTransactions(ctx, userID, transaction.Filter{GoalID: &id, Limit: recentGoalTransactions})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch goal transactions",
			slog.String("operation", "GetGoal"),
			slog.Int64("goal_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.GoalDetail{Goal: *g, Transactions: txs}, nil
}

// CreateGoal validates and stores a new goal.
func (s *GoalService) CreateGoal(ctx context.Context, g *goal.Goal) (*goal.Goal, error) {
	s.logger.InfoContext(ctx, "creating goal", slog.String("name", g.Name))

	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Status == goal.StatusActive && !g.Remaining().IsPositive() {
		g.Status = goal.StatusCompleted
	}

	created, err := s.goals.CreateGoal(ctx, g)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create goal",
			slog.String("operation", "CreateGoal"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateGoal replaces the goal's editable fields. The current amount is
// owned by transactions; a currency change converts it together with every
// linked transaction's goal amount.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, id int64, g *goal.Goal) (*goal.Goal, error) {
	s.logger.InfoContext(ctx, "updating goal", slog.Int64("id", id))

	g.ID = id
	g.UserID = userID
	if err := g.Validate(); err != nil {
		return nil, err
	}

	convert, err := s.rebaser(ctx, g)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update goal",
			slog.String("operation", "UpdateGoal"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	updated, err := s.goals.UpdateGoal(ctx, g, convert)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update goal",
			slog.String("operation", "UpdateGoal"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// rebaser returns the conversion into g's currency from the stored one, or
// nil when the currency is unchanged. The rate is fetched here so the store
// transaction only reads the exchange cache.
func (s *GoalService) rebaser(ctx context.Context, g *goal.Goal) (ports.AmountConverter, error) {
	stored, err := s.goals.GetGoal(ctx, g.UserID, g.ID)
	if err != nil {
		return nil, err
	}
	from, to := stored.Currency, g.Currency
	if from == to {
		return nil, nil
	}
	if _, err := s.converter.Convert(ctx, decimal.NewFromInt(1), from, to); err != nil {
		return nil, fmt.Errorf("converting goal from %s to %s: %w", from, to, err)
	}
	return func(amount decimal.Decimal) (decimal.Decimal, error) {
		return s.converter.Convert(ctx, amount, from, to)
	}, nil
}

// DeleteGoal removes the goal and its transactions.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, id int64) error {
	s.logger.InfoContext(ctx, "deleting goal", slog.Int64("id", id))

	if err := s.goals.DeleteGoal(ctx, userID, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete goal",
			slog.String("operation", "DeleteGoal"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
