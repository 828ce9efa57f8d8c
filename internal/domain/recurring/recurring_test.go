package recurring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpense_IsDue(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 4, 10, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		exp  Expense
		want bool
	}{
		{"due today", Expense{Active: true, NextDate: day(2025, 4, 10)}, true},
		{"overdue", Expense{Active: true, NextDate: day(2025, 3, 1)}, true},
		{"future", Expense{Active: true, NextDate: day(2025, 4, 11)}, false},
		{"inactive", Expense{Active: false, NextDate: day(2025, 4, 1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.exp.IsDue(today); got != tt.want {
				t.Errorf("IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpense_Advance(t *testing.T) {
	t.Parallel()

	today := day(2025, 4, 10)

	tests := []struct {
		name       string
		exp        Expense
		wantNext   time.Time
		wantActive bool
	}{
		{
			name:       "monthly due today",
			exp:        Expense{Active: true, Frequency: domain.FrequencyMonthly, NextDate: day(2025, 4, 10)},
			wantNext:   day(2025, 5, 10),
			wantActive: true,
		},
		{
			name:       "weekly skips missed runs",
			exp:        Expense{Active: true, Frequency: domain.FrequencyWeekly, NextDate: day(2025, 3, 20)},
			wantNext:   day(2025, 4, 17),
			wantActive: true,
		},
		{
			name:       "daily",
			exp:        Expense{Active: true, Frequency: domain.FrequencyDaily, NextDate: day(2025, 4, 10)},
			wantNext:   day(2025, 4, 11),
			wantActive: true,
		},
		{
			name:       "once deactivates",
			exp:        Expense{Active: true, Frequency: domain.FrequencyOnce, NextDate: day(2025, 4, 10)},
			wantNext:   day(2025, 4, 10),
			wantActive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := tt.exp
			e.Advance(today)

			if !e.NextDate.Equal(tt.wantNext) {
				t.Errorf("NextDate = %v, want %v", e.NextDate, tt.wantNext)
			}
			if e.Active != tt.wantActive {
				t.Errorf("Active = %v, want %v", e.Active, tt.wantActive)
			}
			if e.LastRunAt == nil || !e.LastRunAt.Equal(today) {
				t.Errorf("LastRunAt = %v, want %v", e.LastRunAt, today)
			}
		})
	}
}

func TestExpense_Advance_KeepsMonthEnd(t *testing.T) {
	t.Parallel()

	e := Expense{Name: "Rent", Amount: decimal.RequireFromString("1200"), Currency: "USD",
		Active: true, Frequency: domain.FrequencyMonthly, NextDate: day(2025, 1, 31)}
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	for _, want := range []time.Time{day(2025, 2, 28), day(2025, 3, 31), day(2025, 4, 30)} {
		e.Advance(e.NextDate)
		if !e.NextDate.Equal(want) {
			t.Fatalf("NextDate = %s, want %s", e.NextDate.Format(time.DateOnly), want.Format(time.DateOnly))
		}
	}
}

func TestExpense_ToTransaction(t *testing.T) {
	t.Parallel()

	goalID := int64(7)
	e := Expense{
		UserID:   3,
		GoalID:   &goalID,
		Name:     "Gym membership",
		Amount:   decimal.RequireFromString("29.99"),
		Currency: "EUR",
	}

	tx := e.ToTransaction(time.Date(2025, 4, 10, 13, 0, 0, 0, time.UTC))

	if tx.Type != transaction.TypeExpense || tx.Source != transaction.SourceRecurring {
		t.Errorf("Type/Source = %s/%s, want expense/recurring", tx.Type, tx.Source)
	}
	if tx.Description != "Gym membership" || tx.UserID != 3 || *tx.GoalID != 7 {
		t.Errorf("ToTransaction() = %+v, unexpected fields", tx)
	}
	if !tx.Date.Equal(day(2025, 4, 10)) {
		t.Errorf("Date = %v, want start of day", tx.Date)
	}
	if err := tx.Validate(); err != nil {
		t.Errorf("materialized transaction invalid: %v", err)
	}
}
