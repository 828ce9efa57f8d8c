package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/analytics"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Trend and forecast bounds.
const (
	defaultTrendMonths = 6
	maxTrendMonths     = 24
	forecastLookback   = 90 // days of goal history used for the saving pace
	minForecastDays    = 30
)

const forecastSystemPrompt = `You are a concise personal finance coach. Given a savings goal and its
projection, write two or three encouraging sentences with one practical tip. Use plain text, no markdown.`

// Compile-time check that AnalyticsService implements ports.AnalyticsService.
var _ ports.AnalyticsService = (*AnalyticsService)(nil)

// AnalyticsService implements ports.AnalyticsService.
type AnalyticsService struct {
	users      ports.UserRepository
	txs        ports.TransactionRepository
	categories ports.CategoryRepository
	goals      ports.GoalRepository
	converter  ports.CurrencyConverter
	llm        ports.LLMClient
	logger     *slog.Logger
	now        func() time.Time
}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(users ports.UserRepository, txs ports.TransactionRepository,
	categories ports.CategoryRepository, goals ports.GoalRepository, converter ports.CurrencyConverter,
	llm ports.LLMClient, logger *slog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		users:      users,
		txs:        txs,
		categories: categories,
		goals:      goals,
		converter:  converter,
		llm:        llm,
		logger:     orDiscard(logger),
		now:        time.Now,
	}
}

// Summary totals income and expenses dated within [from, to].
func (s *AnalyticsService) Summary(ctx context.Context, userID int64, from, to time.Time) (*analytics.Summary, error) {
	s.logger.InfoContext(ctx, "building summary", slog.Int64("user_id", userID))

	txs, currency, err := s.load(ctx, userID, from, to)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build summary",
			slog.String("operation", "Summary"),
			slog.Any("error", err),
		)
		return nil, err
	}
	summary := analytics.Summarize(txs, currency)
	return &summary, nil
}

// SpendingByCategory breaks down expenses dated within [from, to].
func (s *AnalyticsService) SpendingByCategory(ctx context.Context, userID int64, from, to time.Time) ([]analytics.CategorySpend, error) {
	s.logger.InfoContext(ctx, "building category breakdown", slog.Int64("user_id", userID))

	txs, _, err := s.load(ctx, userID, from, to)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build category breakdown",
			slog.String("operation", "SpendingByCategory"),
			slog.Any("error", err),
		)
		return nil, err
	}
	cs, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.SpendingByCategory(txs, categoryNames(cs)), nil
}

// MonthlyTrend returns totals for the last months calendar months.
func (s *AnalyticsService) MonthlyTrend(ctx context.Context, userID int64, months int) ([]analytics.MonthTotal, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}
	months = min(months, maxTrendMonths)
	s.logger.InfoContext(ctx, "building monthly trend",
		slog.Int64("user_id", userID),
		slog.Int("months", months),
	)

	now := s.now()
	from := domain.AddMonths(domain.MonthStart(now), -(months - 1))
	txs, _, err := s.load(ctx, userID, from, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build monthly trend",
			slog.String("operation", "MonthlyTrend"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return analytics.MonthlyTrend(txs, now, months), nil
}

// GoalForecast projects a goal from its saving pace over the last 90 days.
// The narrative is best effort and left empty when the LLM fails.
func (s *AnalyticsService) GoalForecast(ctx context.Context, userID, goalID int64) (*ports.GoalForecast, error) {
	s.logger.InfoContext(ctx, "forecasting goal", slog.Int64("goal_id", goalID))

	g, err := s.goals.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.Day(now)
	from := today.AddDate(0, 0, -forecastLookback)
	if created := domain.Day(g.CreatedAt); created.After(from) && !created.After(today) {
		from = created
	}

	txs, err := s.txs.ListTransactions(ctx, userID, transaction.Filter{GoalID: &goalID, From: &from, To: &today})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load goal history",
			slog.String("operation", "GoalForecast"),
			slog.Int64("goal_id", goalID),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := &ports.GoalForecast{
		Goal:     *g,
		Forecast: g.Forecast(monthlyPace(txs, from, today), now),
	}

	narrative, err := s.llm.Generate(ctx, ports.LLMRequest{
		System: forecastSystemPrompt,
		Prompt: describeForecast(g, out.Forecast),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "forecast narrative unavailable",
			slog.Int64("goal_id", goalID),
			slog.Any("error", err),
		)
		return out, nil
	}
	out.Narrative = narrative
	return out, nil
}

// load returns the user's transactions dated within [from, to] converted to
// the user's base currency.
func (s *AnalyticsService) load(ctx context.Context, userID int64, from, to time.Time) ([]transaction.Transaction, string, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	from, to = domain.Day(from), domain.Day(to)
	if to.Before(from) {
		return nil, "", domain.NewValidationError("to", "must not be before from")
	}

	txs, err := s.txs.ListTransactions(ctx, userID, transaction.Filter{From: &from, To: &to})
	if err != nil {
		return nil, "", err
	}
	converted, err := convertAll(ctx, s.converter, txs, u.BaseCurrency)
	if err != nil {
		return nil, "", err
	}
	return converted, u.BaseCurrency, nil
}

// convertAll returns copies of txs with Amount and Currency expressed in currency.
func convertAll(ctx context.Context, converter ports.CurrencyConverter, txs []transaction.Transaction,
	currency string,
) ([]transaction.Transaction, error) {
	out := make([]transaction.Transaction, len(txs))
	for i, tx := range txs {
		if tx.Currency != currency {
			amount, err := converter.Convert(ctx, tx.Amount, tx.Currency, currency)
			if err != nil {
				return nil, fmt.Errorf("converting transaction %d: %w", tx.ID, err)
			}
			tx.Amount = amount
			tx.Currency = currency
		}
		out[i] = tx
	}
	return out, nil
}

// monthlyPace is the net goal movement per 30 days over [from, today],
// counting at least one month.
func monthlyPace(txs []transaction.Transaction, from, today time.Time) decimal.Decimal {
	total := decimal.Zero
	for i := range txs {
		total = total.Add(txs[i].GoalAmount)
	}
	days := max(domain.DaysBetween(from, today), minForecastDays)
	return total.Mul(decimal.NewFromInt(30)).Div(decimal.NewFromInt(int64(days)))
}

func describeForecast(g *goal.Goal, f goal.Forecast) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\n", g.Name)
	fmt.Fprintf(&b, "Saved: %s of %s %s (%d%%)\n",
		g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2), g.Currency, g.ProgressPercent())
	fmt.Fprintf(&b, "Average monthly contribution: %s %s\n", f.MonthlyContribution.StringFixed(2), g.Currency)
	if g.Deadline != nil {
		fmt.Fprintf(&b, "Deadline: %s, required monthly: %s\n",
			g.Deadline.Format(time.DateOnly), f.RequiredMonthly.StringFixed(2))
	}
	switch {
	case f.ProjectedDate == nil:
		b.WriteString("Projection: not reachable at the current pace\n")
	default:
		fmt.Fprintf(&b, "Projected completion: %s (on track: %t)\n", f.ProjectedDate.Format(time.DateOnly), f.OnTrack)
	}
	return b.String()
}
