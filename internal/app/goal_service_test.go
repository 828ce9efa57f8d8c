package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

func TestGoalService_CreateGoal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         goal.Goal
		wantStatus goal.Status
		wantErr    error
	}{
		{
			name:       "new goal is active",
			in:         goal.Goal{Name: "Trip", TargetAmount: dec("3000"), Currency: "eur"},
			wantStatus: goal.StatusActive,
		},
		{
			name:       "goal already reached is completed",
			in:         goal.Goal{Name: "Laptop", TargetAmount: dec("1000"), CurrentAmount: dec("1000"), Currency: "USD"},
			wantStatus: goal.StatusCompleted,
		},
		{
			name:    "missing target",
			in:      goal.Goal{Name: "Nothing", Currency: "USD"},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestStore(t)
			u := seedUser(t, s, "a@example.com", "USD")
			svc := NewGoalService(s, s, mocks.NewMockCurrencyConverter(t), discardLogger())

			in := tt.in
			in.UserID = u.ID
			got, err := svc.CreateGoal(context.Background(), &in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, got.ID)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestGoalService_GetGoal_IncludesRecentTransactions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "a@example.com", "USD")
	g := seedGoal(t, s, u.ID, "100000", "USD")
	for i := 1; i <= 12; i++ {
		seedTx(t, s, transaction.Transaction{
			UserID: u.ID, GoalID: &g.ID, Type: transaction.TypeIncome, Amount: dec("10"),
			Currency: "USD", Description: "Deposit", Date: day(2025, 1, i),
		})
	}
	svc := NewGoalService(s, s, mocks.NewMockCurrencyConverter(t), discardLogger())

	detail, err := svc.GetGoal(ctx, u.ID, g.ID)
	require.NoError(t, err)
	assert.True(t, detail.Goal.CurrentAmount.Equal(dec("120")))
	require.Len(t, detail.Transactions, recentGoalTransactions)
	assert.Equal(t, day(2025, 1, 12), detail.Transactions[0].Date)
}

func TestGoalService_DeleteGoal_RemovesTransactions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "a@example.com", "USD")
	g := seedGoal(t, s, u.ID, "1000", "USD")
	tx := seedTx(t, s, transaction.Transaction{
		UserID: u.ID, GoalID: &g.ID, Type: transaction.TypeIncome, Amount: dec("10"),
		Currency: "USD", Description: "Deposit", Date: day(2025, 1, 1),
	})
	svc := NewGoalService(s, s, mocks.NewMockCurrencyConverter(t), discardLogger())

	require.NoError(t, svc.DeleteGoal(ctx, u.ID, g.ID))

	_, err := s.GetTransaction(ctx, u.ID, tx.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteGoal(ctx, u.ID, g.ID), domain.ErrNotFound)
}

func TestGoalService_UpdateGoal_CurrencyChange(t *testing.T) {
	t.Parallel()

	// seed creates a USD goal holding 50 entered by hand plus a linked 100 deposit.
	seed := func(t *testing.T) (*sqlite.Store, int64, *goal.Goal, *transaction.Transaction) {
		t.Helper()
		s := newTestStore(t)
		u := seedUser(t, s, "a@example.com", "USD")
		g, err := s.CreateGoal(context.Background(), &goal.Goal{
			UserID: u.ID, Name: "Tokyo trip", TargetAmount: dec("1000"),
			CurrentAmount: dec("50"), Currency: "USD", Status: goal.StatusActive,
		})
		require.NoError(t, err)
		tx := seedTx(t, s, transaction.Transaction{
			UserID: u.ID, GoalID: &g.ID, Type: transaction.TypeIncome, Amount: dec("100"),
			Currency: "USD", Description: "Deposit", Date: day(2025, 2, 1),
		})
		return s, u.ID, g, tx
	}

	t.Run("balance and linked amounts are converted", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		s, userID, g, tx := seed(t)
		converter := mocks.NewMockCurrencyConverter(t)
		converter.EXPECT().Convert(mock.Anything, decArg("1"), "USD", "JPY").Return(dec("150"), nil)
		converter.EXPECT().Convert(mock.Anything, decArg("100"), "USD", "JPY").Return(dec("15000"), nil)
		converter.EXPECT().Convert(mock.Anything, decArg("50"), "USD", "JPY").Return(dec("7500"), nil)
		svc := NewGoalService(s, s, converter, discardLogger())

		updated, err := svc.UpdateGoal(ctx, userID, g.ID, &goal.Goal{
			Name: "Tokyo trip", TargetAmount: dec("150000"), Currency: "jpy",
		})
		require.NoError(t, err)
		assert.Equal(t, "JPY", updated.Currency)
		assert.True(t, updated.CurrentAmount.Equal(dec("22500")), "current = %s", updated.CurrentAmount)

		linked, err := s.GetTransaction(ctx, userID, tx.ID)
		require.NoError(t, err)
		assert.True(t, linked.GoalAmount.Equal(dec("15000")), "goal amount = %s", linked.GoalAmount)

		// Removing the deposit takes back exactly what it now contributes.
		require.NoError(t, s.DeleteTransaction(ctx, userID, tx.ID))
		got, err := s.GetGoal(ctx, userID, g.ID)
		require.NoError(t, err)
		assert.True(t, got.CurrentAmount.Equal(dec("7500")), "current = %s", got.CurrentAmount)
	})

	t.Run("missing rate leaves the goal untouched", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		s, userID, g, tx := seed(t)
		converter := mocks.NewMockCurrencyConverter(t)
		converter.EXPECT().Convert(mock.Anything, decArg("1"), "USD", "JPY").Return(dec("0"), domain.ErrUnavailable)
		svc := NewGoalService(s, s, converter, discardLogger())

		_, err := svc.UpdateGoal(ctx, userID, g.ID, &goal.Goal{
			Name: "Tokyo trip", TargetAmount: dec("150000"), Currency: "JPY",
		})
		require.ErrorIs(t, err, domain.ErrUnavailable)

		got, err := s.GetGoal(ctx, userID, g.ID)
		require.NoError(t, err)
		assert.Equal(t, "USD", got.Currency)
		assert.True(t, got.CurrentAmount.Equal(dec("150")), "current = %s", got.CurrentAmount)
		linked, err := s.GetTransaction(ctx, userID, tx.ID)
		require.NoError(t, err)
		assert.True(t, linked.GoalAmount.Equal(dec("100")))
	})

	t.Run("same currency skips conversion", func(t *testing.T) {
		t.Parallel()
		s, userID, g, _ := seed(t)
		svc := NewGoalService(s, s, mocks.NewMockCurrencyConverter(t), discardLogger())

		updated, err := svc.UpdateGoal(context.Background(), userID, g.ID, &goal.Goal{
			Name: "Tokyo trip", TargetAmount: dec("2000"), Currency: "usd",
		})
		require.NoError(t, err)
		assert.True(t, updated.CurrentAmount.Equal(dec("150")))
	})
}
