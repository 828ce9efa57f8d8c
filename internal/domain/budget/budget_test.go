package budget

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBudget_Validate(t *testing.T) {
	t.Parallel()

	b := Budget{CategoryID: 0, Amount: decimal.Zero, Currency: "x", Period: "daily"}
	err := b.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	for _, f := range []string{"category_id", "amount", "currency", "period"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("Fields missing %q", f)
		}
	}

	ok := Budget{CategoryID: 3, Amount: decimal.NewFromInt(300), Currency: "eur", Period: PeriodMonthly}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestBudget_Window(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 19, 15, 4, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name      string
		budget    Budget
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "monthly calendar",
			budget:    Budget{Period: PeriodMonthly},
			wantStart: date(2025, 3, 1),
			wantEnd:   date(2025, 4, 1),
		},
		{
			name:      "monthly clipped to start date",
			budget:    Budget{Period: PeriodMonthly, StartDate: date(2025, 3, 10)},
			wantStart: date(2025, 3, 10),
			wantEnd:   date(2025, 4, 1),
		},
		{
			name:      "yearly",
			budget:    Budget{Period: PeriodYearly},
			wantStart: date(2025, 1, 1),
			wantEnd:   date(2026, 1, 1),
		},
		{
			name:      "weekly monday based",
			budget:    Budget{Period: PeriodWeekly},
			wantStart: date(2025, 3, 17),
			wantEnd:   date(2025, 3, 24),
		},
		{
			name:      "weekly anchored",
			budget:    Budget{Period: PeriodWeekly, StartDate: date(2025, 3, 1)},
			wantStart: date(2025, 3, 15),
			wantEnd:   date(2025, 3, 22),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end := tt.budget.Window(now)
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("Window() = [%v, %v), want [%v, %v)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestBudget_Evaluate(t *testing.T) {
	t.Parallel()

	b := Budget{Amount: decimal.NewFromInt(200)}

	under := b.Evaluate(decimal.RequireFromString("50.25"))
	if under.OverBudget {
		t.Error("OverBudget = true, want false")
	}
	if !under.Remaining.Equal(decimal.RequireFromString("149.75")) {
		t.Errorf("Remaining = %s, want 149.75", under.Remaining)
	}
	if under.PercentUsed != 25.1 {
		t.Errorf("PercentUsed = %v, want 25.1", under.PercentUsed)
	}

	over := b.Evaluate(decimal.NewFromInt(260))
	if !over.OverBudget {
		t.Error("OverBudget = false, want true")
	}
	if !over.Remaining.Equal(decimal.NewFromInt(-60)) {
		t.Errorf("Remaining = %s, want -60", over.Remaining)
	}
	if over.PercentUsed != 130 {
		t.Errorf("PercentUsed = %v, want 130", over.PercentUsed)
	}

	exact := b.Evaluate(decimal.NewFromInt(200))
	if exact.OverBudget {
		t.Error("OverBudget at exactly the limit = true, want false")
	}
}
