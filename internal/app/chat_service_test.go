package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/analytics"
	"github.com/jsamuelsen11/moneygoal/internal/domain/bill"
	"github.com/jsamuelsen11/moneygoal/internal/domain/chat"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

type chatFixture struct {
	store     *sqlite.Store
	userID    int64
	analytics *mocks.MockAnalyticsService
	budgets   *mocks.MockBudgetService
	bills     *mocks.MockBillService
	llm       *mocks.MockLLMClient
	svc       *ChatService
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	s := newTestStore(t)
	u := seedUser(t, s, "a@example.com", "USD")
	seedGoal(t, s, u.ID, "5000", "USD")

	f := &chatFixture{
		store:     s,
		userID:    u.ID,
		analytics: mocks.NewMockAnalyticsService(t),
		budgets:   mocks.NewMockBudgetService(t),
		bills:     mocks.NewMockBillService(t),
		llm:       mocks.NewMockLLMClient(t),
	}
	f.svc = NewChatService(s, s, s, f.analytics, f.budgets, f.bills, f.llm, 10, discardLogger())
	return f
}

func (f *chatFixture) expectContext(budgetErr error) {
	f.analytics.EXPECT().Summary(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(&analytics.Summary{
		Currency: "USD", Income: dec("3000"), Expense: dec("1800"), Net: dec("1200"), SavingsRate: 40,
	}, nil)
	f.analytics.EXPECT().SpendingByCategory(mock.Anything, f.userID, mock.Anything, mock.Anything).Return([]analytics.CategorySpend{
		{Name: "Groceries", Amount: dec("600"), Percent: 33.3},
	}, nil)
	if budgetErr != nil {
		f.budgets.EXPECT().ListStatus(mock.Anything, f.userID, mock.Anything).Return(nil, budgetErr)
	} else {
		f.budgets.EXPECT().ListStatus(mock.Anything, f.userID, mock.Anything).Return(nil, nil)
	}
	f.bills.EXPECT().Upcoming(mock.Anything, f.userID, contextBillDays).Return([]bill.Bill{
		{Name: "Rent", Amount: dec("1200"), Currency: "USD", DueDate: day(2025, 3, 15)},
	}, nil)
}

func TestChatService_SendMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newChatFixture(t)
	_, err := f.store.AppendMessage(ctx, &chat.Message{UserID: f.userID, Role: chat.RoleUser, Content: "hi"})
	require.NoError(t, err)
	_, err = f.store.AppendMessage(ctx, &chat.Message{UserID: f.userID, Role: chat.RoleAssistant, Content: "hello!"})
	require.NoError(t, err)

	f.expectContext(nil)
	f.llm.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(r ports.LLMRequest) bool {
		return strings.Contains(r.System, "Emergency fund") &&
			strings.Contains(r.System, "Groceries") &&
			strings.Contains(r.System, "Rent") &&
			len(r.History) == 2 &&
			r.Prompt == "Can I afford a trip?"
	})).Return("Yes, if you cut groceries by 10%.", nil)

	reply, err := f.svc.SendMessage(ctx, f.userID, "  Can I afford a trip?  ")
	require.NoError(t, err)
	assert.Equal(t, chat.RoleAssistant, reply.Role)
	assert.Equal(t, "Yes, if you cut groceries by 10%.", reply.Content)

	history, err := f.svc.History(ctx, f.userID, 0)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "Can I afford a trip?", history[2].Content)
}

func TestChatService_SendMessage_PartialContext(t *testing.T) {
	t.Parallel()
	f := newChatFixture(t)
	f.expectContext(errors.New("db locked"))
	f.llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("ok", nil)

	reply, err := f.svc.SendMessage(context.Background(), f.userID, "status?")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply.Content)
}

func TestChatService_SendMessage_AdvisorDown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newChatFixture(t)
	f.expectContext(nil)
	f.llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("", domain.ErrUnavailable)

	_, err := f.svc.SendMessage(ctx, f.userID, "hello")
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	history, err := f.svc.History(ctx, f.userID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, chat.RoleUser, history[0].Role)
}

func TestChatService_SendMessage_Empty(t *testing.T) {
	t.Parallel()
	f := newChatFixture(t)

	_, err := f.svc.SendMessage(context.Background(), f.userID, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChatService_Clear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newChatFixture(t)
	_, err := f.store.AppendMessage(ctx, &chat.Message{UserID: f.userID, Role: chat.RoleUser, Content: "hi"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Clear(ctx, f.userID))
	history, err := f.svc.History(ctx, f.userID, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ab", truncate("abc", 2))
	// "é" is two bytes; cutting inside it drops the whole rune.
	assert.Equal(t, "a", truncate("aé", 2))
}
