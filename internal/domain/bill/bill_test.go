package bill

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

func TestBill_Validate(t *testing.T) {
	t.Parallel()

	b := Bill{Name: "Rent", Amount: decimal.NewFromInt(1200), Currency: "usd", DueDate: time.Now()}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if b.Frequency != domain.FrequencyMonthly {
		t.Errorf("Frequency = %q, want monthly default", b.Frequency)
	}

	bad := Bill{Frequency: "fortnightly"}
	err := bad.Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	for _, f := range []string{"name", "amount", "currency", "due_date", "frequency"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("Fields missing %q", f)
		}
	}
}

func TestBill_MarkPaid(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		freq     domain.Frequency
		due      time.Time
		wantDue  time.Time
		wantPaid bool
	}{
		{
			name:     "monthly clamps to month end",
			freq:     domain.FrequencyMonthly,
			due:      time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			wantDue:  time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			wantPaid: false,
		},
		{
			name:     "weekly",
			freq:     domain.FrequencyWeekly,
			due:      time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
			wantDue:  time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC),
			wantPaid: false,
		},
		{
			name:     "one time",
			freq:     domain.FrequencyOnce,
			due:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			wantDue:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			wantPaid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := Bill{Frequency: tt.freq, DueDate: tt.due}
			b.MarkPaid(now)

			if !b.DueDate.Equal(tt.wantDue) {
				t.Errorf("DueDate = %v, want %v", b.DueDate, tt.wantDue)
			}
			if b.IsPaid != tt.wantPaid {
				t.Errorf("IsPaid = %v, want %v", b.IsPaid, tt.wantPaid)
			}
			if b.LastPaidAt == nil || !b.LastPaidAt.Equal(now) {
				t.Errorf("LastPaidAt = %v, want %v", b.LastPaidAt, now)
			}
		})
	}
}

func TestBill_MarkPaid_ReturnsToAnchorDay(t *testing.T) {
	t.Parallel()

	b := Bill{Name: "Rent", Amount: decimal.RequireFromString("1200"), Currency: "USD",
		Frequency: domain.FrequencyMonthly, DueDate: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	var got []string
	for range 3 {
		b.MarkPaid(b.DueDate)
		got = append(got, b.DueDate.Format(time.DateOnly))
	}
	want := []string{"2025-02-28", "2025-03-31", "2025-04-30"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("due dates mismatch (-want +got):\n%s", diff)
	}
}

func TestBill_DueChecks(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	b := Bill{DueDate: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)}

	if got := b.DaysUntilDue(now); got != 3 {
		t.Errorf("DaysUntilDue() = %d, want 3", got)
	}
	if b.IsOverdue(now) {
		t.Error("IsOverdue() = true, want false")
	}

	late := Bill{DueDate: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)}
	if !late.IsOverdue(now) {
		t.Error("IsOverdue() = false, want true")
	}
	late.IsPaid = true
	if late.IsOverdue(now) {
		t.Error("paid bill IsOverdue() = true, want false")
	}
}
