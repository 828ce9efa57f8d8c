package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/bill"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

func newBillService(t *testing.T, now time.Time) (*BillService, int64, func(b bill.Bill) *bill.Bill) {
	t.Helper()
	s := newTestStore(t)
	u := seedUser(t, s, "a@example.com", "USD")
	svc := NewBillService(s, s, mocks.NewMockCurrencyConverter(t), discardLogger())
	svc.now = fixedClock(now)
	create := func(b bill.Bill) *bill.Bill {
		b.UserID = u.ID
		created, err := svc.CreateBill(context.Background(), &b)
		require.NoError(t, err)
		return created
	}
	return svc, u.ID, create
}

func TestBillService_Upcoming(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, userID, create := newBillService(t, now)

	create(bill.Bill{Name: "Rent", Amount: dec("1200"), Currency: "USD", DueDate: day(2025, 3, 15), Frequency: domain.FrequencyMonthly})
	create(bill.Bill{Name: "Phone", Amount: dec("40"), Currency: "USD", DueDate: day(2025, 3, 5), Frequency: domain.FrequencyMonthly})
	create(bill.Bill{Name: "Insurance", Amount: dec("600"), Currency: "USD", DueDate: day(2025, 6, 1), Frequency: domain.FrequencyYearly})

	got, err := svc.Upcoming(context.Background(), userID, 0)
	require.NoError(t, err)

	var names []string
	for _, b := range got {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Phone", "Rent"}, names)

	got, err = svc.Upcoming(context.Background(), userID, 1000)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestBillService_MarkPaid(t *testing.T) {
	t.Parallel()

	t.Run("recurring bill rolls forward and records an expense", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
		svc, userID, create := newBillService(t, now)
		rent := create(bill.Bill{Name: "Rent", Amount: dec("1200"), Currency: "USD", DueDate: day(2025, 3, 15), Frequency: domain.FrequencyMonthly})

		paid, err := svc.MarkPaid(ctx, userID, rent.ID, ports.PayOptions{RecordTransaction: true})
		require.NoError(t, err)
		assert.Equal(t, day(2025, 4, 15), paid.Bill.DueDate)
		assert.False(t, paid.Bill.IsPaid)
		require.NotNil(t, paid.Transaction)
		assert.Equal(t, transaction.TypeExpense, paid.Transaction.Type)
		assert.Equal(t, "Rent", paid.Transaction.Description)
		assert.Equal(t, day(2025, 3, 14), paid.Transaction.Date)
		assert.True(t, paid.Transaction.Amount.Equal(dec("1200")))

		stored, err := svc.GetBill(ctx, userID, rent.ID)
		require.NoError(t, err)
		assert.Equal(t, day(2025, 4, 15), stored.DueDate)
		require.NotNil(t, stored.LastPaidAt)
	})

	t.Run("one-time bill cannot be paid twice", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		svc, userID, create := newBillService(t, day(2025, 3, 1))
		fee := create(bill.Bill{Name: "Visa fee", Amount: dec("160"), Currency: "USD", DueDate: day(2025, 3, 20), Frequency: domain.FrequencyOnce})

		paid, err := svc.MarkPaid(ctx, userID, fee.ID, ports.PayOptions{})
		require.NoError(t, err)
		assert.True(t, paid.Bill.IsPaid)
		assert.Nil(t, paid.Transaction)

		_, err = svc.MarkPaid(ctx, userID, fee.ID, ports.PayOptions{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
