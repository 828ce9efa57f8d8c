package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/moneygoal/internal/domain/category"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/domain/user"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func int64Ptr(v int64) *int64 { return &v }

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// decArg matches a decimal argument by value rather than representation.
func decArg(v string) any {
	want := dec(v)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// newTestStore opens a migrated SQLite store in a temp directory.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "moneygoal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *sqlite.Store, email, currency string) *user.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), &user.User{
		Email:        email,
		Name:         "Ana",
		PasswordHash: "hash",
		BaseCurrency: currency,
	})
	require.NoError(t, err)
	return u
}

func seedGoal(t *testing.T, s *sqlite.Store, userID int64, target, currency string) *goal.Goal {
	t.Helper()
	g, err := s.CreateGoal(context.Background(), &goal.Goal{
		UserID:        userID,
		Name:          "Emergency fund",
		TargetAmount:  dec(target),
		CurrentAmount: decimal.Zero,
		Currency:      currency,
		Status:        goal.StatusActive,
	})
	require.NoError(t, err)
	return g
}

func seedCategory(t *testing.T, s *sqlite.Store, userID int64, name string, typ transaction.Type) *category.Category {
	t.Helper()
	c, err := s.CreateCategory(context.Background(), &category.Category{UserID: userID, Name: name, Type: typ})
	require.NoError(t, err)
	return c
}

func seedTx(t *testing.T, s *sqlite.Store, tx transaction.Transaction) *transaction.Transaction {
	t.Helper()
	if tx.GoalAmount.IsZero() && tx.GoalID != nil {
		tx.GoalAmount = tx.Signed()
	}
	created, err := s.CreateTransaction(context.Background(), &tx)
	require.NoError(t, err)
	return created
}
