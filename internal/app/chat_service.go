package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/analytics"
	"github.com/jsamuelsen11/moneygoal/internal/domain/bill"
	"github.com/jsamuelsen11/moneygoal/internal/domain/chat"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Advisor context bounds.
const (
	DefaultHistoryLimit = 20
	maxHistoryLimit     = 100
	contextDays         = 30
	contextCategories   = 5
	contextBillDays     = 14
)

const advisorSystemPrompt = `You are MoneyGoal, a friendly personal finance advisor. Answer using the
user's financial data below when it is relevant. Be specific and brief, prefer concrete numbers,
and never invent transactions or balances that are not listed. Use plain text.`

// Compile-time check that ChatService implements ports.ChatService.
var _ ports.ChatService = (*ChatService)(nil)

// ChatService implements ports.ChatService.
type ChatService struct {
	chats        ports.ChatRepository
	users        ports.UserRepository
	goals        ports.GoalRepository
	analytics    ports.AnalyticsService
	budgets      ports.BudgetService
	bills        ports.BillService
	llm          ports.LLMClient
	historyLimit int
	logger       *slog.Logger
	now          func() time.Time
}

// NewChatService creates a ChatService. A non-positive historyLimit uses
// DefaultHistoryLimit.
func NewChatService(chats ports.ChatRepository, users ports.UserRepository, goals ports.GoalRepository,
	analytics ports.AnalyticsService, budgets ports.BudgetService, bills ports.BillService,
	llm ports.LLMClient, historyLimit int, logger *slog.Logger,
) *ChatService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &ChatService{
		chats:        chats,
		users:        users,
		goals:        goals,
		analytics:    analytics,
		budgets:      budgets,
		bills:        bills,
		llm:          llm,
		historyLimit: historyLimit,
		logger:       orDiscard(logger),
		now:          time.Now,
	}
}

// SendMessage stores the user's text, asks the advisor with the recent
// history and a snapshot of the user's finances, then stores and returns the
// reply. The user message is kept even when the advisor fails.
func (s *ChatService) SendMessage(ctx context.Context, userID int64, text string) (*chat.Message, error) {
	s.logger.InfoContext(ctx, "sending advisor message", slog.Int64("user_id", userID))

	msg := &chat.Message{UserID: userID, Role: chat.RoleUser, Content: strings.TrimSpace(text)}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	history, err := s.chats.ListMessages(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, err
	}
	if _, err := s.chats.AppendMessage(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to store message",
			slog.String("operation", "SendMessage"),
			slog.Any("error", err),
		)
		return nil, err
	}

	snapshot := s.financialContext(ctx, userID)
	reply, err := s.llm.Generate(ctx, ports.LLMRequest{
		System:  advisorSystemPrompt + "\n\n" + snapshot,
		History: history,
		Prompt:  msg.Content,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "advisor failed",
			slog.String("operation", "SendMessage"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	answer := &chat.Message{UserID: userID, Role: chat.RoleAssistant, Content: truncate(reply, chat.MaxContentLength)}
	stored, err := s.chats.AppendMessage(ctx, answer)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store reply",
			slog.String("operation", "SendMessage"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return stored, nil
}

// History returns the latest limit messages, oldest first.
func (s *ChatService) History(ctx context.Context, userID int64, limit int) ([]chat.Message, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	limit = min(limit, maxHistoryLimit)

	msgs, err := s.chats.ListMessages(ctx, userID, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list messages",
			slog.String("operation", "History"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return msgs, nil
}

// Clear deletes the user's conversation.
func (s *ChatService) Clear(ctx context.Context, userID int64) error {
	s.logger.InfoContext(ctx, "clearing conversation", slog.Int64("user_id", userID))

	if err := s.chats.ClearMessages(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear messages",
			slog.String("operation", "Clear"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// snapshot is the financial data shared with the advisor.
type snapshot struct {
	user       string
	goals      []goal.Goal
	summary    *analytics.Summary
	categories []analytics.CategorySpend
	budgets    []ports.BudgetStatus
	bills      []bill.Bill
}

// financialContext gathers the snapshot concurrently. A part that fails is
// left out and logged; the advisor still answers with the rest.
func (s *ChatService) financialContext(ctx context.Context, userID int64) string {
	now := s.now()
	to := domain.Day(now)
	from := to.AddDate(0, 0, -contextDays)

	var snap snapshot
	var g errgroup.Group
	g.Go(func() error {
		u, err := s.users.GetUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("user: %w", err)
		}
		snap.user = fmt.Sprintf("Name: %s, base currency: %s", u.Name, u.BaseCurrency)
		return nil
	})
	g.Go(func() error {
		gs, err := s.goals.ListGoals(ctx, userID)
		if err != nil {
			return fmt.Errorf("goals: %w", err)
		}
		snap.goals = gs
		return nil
	})
	g.Go(func() error {
		sum, err := s.analytics.Summary(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		snap.summary = sum
		return nil
	})
	g.Go(func() error {
		cs, err := s.analytics.SpendingByCategory(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		snap.categories = cs[:min(len(cs), contextCategories)]
		return nil
	})
	g.Go(func() error {
		bs, err := s.budgets.ListStatus(ctx, userID, now)
		if err != nil {
			return fmt.Errorf("budgets: %w", err)
		}
		snap.budgets = bs
		return nil
	})
	g.Go(func() error {
		bs, err := s.bills.Upcoming(ctx, userID, contextBillDays)
		if err != nil {
			return fmt.Errorf("bills: %w", err)
		}
		snap.bills = bs
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "advisor context incomplete",
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
	}

	return snap.render(now)
}

func (s snapshot) render(now time.Time) string {
	var b strings.Builder
	b.WriteString("## User\n")
	if s.user != "" {
		b.WriteString(s.user + "\n")
	}

	b.WriteString("\n## Goals\n")
	if len(s.goals) == 0 {
		b.WriteString("none\n")
	}
	for i := range s.goals {
		g := &s.goals[i]
		fmt.Fprintf(&b, "- %s: %s / %s %s (%d%%, %s)", g.Name,
			g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2), g.Currency, g.ProgressPercent(), g.Status)
		if g.Deadline != nil {
			fmt.Fprintf(&b, ", deadline %s", g.Deadline.Format(time.DateOnly))
		}
		b.WriteString("\n")
	}

	if s.summary != nil {
		fmt.Fprintf(&b, "\n## Last %d days (%s)\n", contextDays, s.summary.Currency)
		fmt.Fprintf(&b, "Income %s, expenses %s, net %s, savings rate %.1f%%\n",
			s.summary.Income.StringFixed(2), s.summary.Expense.StringFixed(2),
			s.summary.Net.StringFixed(2), s.summary.SavingsRate)
	}

	if len(s.categories) > 0 {
		b.WriteString("\n## Top spending categories\n")
		for _, c := range s.categories {
			fmt.Fprintf(&b, "- %s: %s (%.1f%%)\n", c.Name, c.Amount.StringFixed(2), c.Percent)
		}
	}

	if len(s.budgets) > 0 {
		b.WriteString("\n## Budgets\n")
		for _, st := range s.budgets {
			fmt.Fprintf(&b, "- %s (%s): spent %s of %s %s (%.0f%%)", st.CategoryName, st.Budget.Period,
				st.Status.Spent.StringFixed(2), st.Budget.Amount.StringFixed(2), st.Budget.Currency, st.Status.PercentUsed)
			if st.Status.OverBudget {
				b.WriteString(" OVER BUDGET")
			}
			b.WriteString("\n")
		}
	}

	if len(s.bills) > 0 {
		b.WriteString("\n## Upcoming bills\n")
		for i := range s.bills {
			bl := &s.bills[i]
			fmt.Fprintf(&b, "- %s: %s %s due %s", bl.Name, bl.Amount.StringFixed(2), bl.Currency,
				bl.DueDate.Format(time.DateOnly))
			if bl.IsOverdue(now) {
				b.WriteString(" (overdue)")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
