package app

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

const bankCSV = `Date,Description,Amount,Category
2025-03-01,Coffee,-3.50,Groceries
2025-03-02,Salary,2500.00,
2025-03-01,COFFEE,-3.50,
not-a-date,Oops,1,
`

func TestImportService_Preview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "a@example.com", "USD")
	svc := NewImportService(s, s, s, s, mocks.NewMockCurrencyConverter(t), nil, discardLogger())

	preview, err := svc.Preview(ctx, u.ID, strings.NewReader(bankCSV), ports.ImportOptions{PreviewRows: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Amount", "Category"}, preview.Columns)
	assert.Equal(t, 3, preview.Total)
	require.Len(t, preview.Rows, 2)
	assert.False(t, preview.Rows[0].Duplicate)
	require.Len(t, preview.Errors, 1)
	assert.Equal(t, 5, preview.Errors[0].Line)

	full, err := svc.Preview(ctx, u.ID, strings.NewReader(bankCSV), ports.ImportOptions{})
	require.NoError(t, err)
	require.Len(t, full.Rows, 3)
	assert.True(t, full.Rows[2].Duplicate, "second coffee duplicates the first")

	txs, err := s.ListTransactions(ctx, u.ID, transaction.Filter{})
	require.NoError(t, err)
	assert.Empty(t, txs, "preview writes nothing")
}

func TestImportService_Import(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "a@example.com", "USD")
	groceries := seedCategory(t, s, u.ID, "Groceries", transaction.TypeExpense)
	g := seedGoal(t, s, u.ID, "10000", "USD")
	svc := NewImportService(s, s, s, s, mocks.NewMockCurrencyConverter(t), nil, discardLogger())

	res, err := svc.Import(ctx, u.ID, strings.NewReader(bankCSV), ports.ImportOptions{GoalID: &g.ID})
	require.NoError(t, err)
	_, err = uuid.Parse(res.BatchID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)

	txs, err := s.ListTransactions(ctx, u.ID, transaction.Filter{Source: transaction.SourceCSV})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	coffee := txs[1]
	assert.Equal(t, transaction.TypeExpense, coffee.Type)
	assert.Equal(t, "USD", coffee.Currency)
	require.NotNil(t, coffee.CategoryID)
	assert.Equal(t, groceries.ID, *coffee.CategoryID)
	assert.Equal(t, res.BatchID+":2", coffee.ExternalID)

	stored, err := s.GetGoal(ctx, u.ID, g.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAmount.Equal(dec("2496.50")), "current = %s", stored.CurrentAmount)

	// Importing the same file again only finds duplicates.
	again, err := svc.Import(ctx, u.ID, strings.NewReader(bankCSV), ports.ImportOptions{})
	require.NoError(t, err)
	assert.Zero(t, again.Imported)
	assert.Equal(t, 3, again.Skipped)
}

func TestImportService_InvalidCurrency(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	u := seedUser(t, s, "a@example.com", "USD")
	svc := NewImportService(s, s, s, s, mocks.NewMockCurrencyConverter(t), nil, discardLogger())

	_, err := svc.Import(context.Background(), u.ID, strings.NewReader(bankCSV), ports.ImportOptions{Currency: "euro"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
