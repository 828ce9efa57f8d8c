package goal

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGoal_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		goal  Goal
		field string
	}{
		{"missing name", Goal{TargetAmount: dec("10"), Currency: "EUR"}, "name"},
		{"zero target", Goal{Name: "Car", Currency: "EUR"}, "target_amount"},
		{"negative current", Goal{Name: "Car", TargetAmount: dec("10"), CurrentAmount: dec("-1"), Currency: "EUR"}, "current_amount"},
		{"bad currency", Goal{Name: "Car", TargetAmount: dec("10"), Currency: "EURO"}, "currency"},
		{"bad status", Goal{Name: "Car", TargetAmount: dec("10"), Currency: "EUR", Status: "paused"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.goal.Validate()
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestGoal_ValidateDefaults(t *testing.T) {
	t.Parallel()

	g := Goal{Name: "Emergency fund", TargetAmount: dec("5000"), Currency: "gbp"}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if g.Status != StatusActive {
		t.Errorf("Status = %q, want active", g.Status)
	}
	if g.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", g.Currency)
	}
}

func TestGoal_ProgressPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target, current string
		want            int
	}{
		{"1000", "0", 0},
		{"1000", "333.33", 33},
		{"1000", "999.99", 99},
		{"1000", "1000", 100},
		{"1000", "2500", 100},
		{"1000", "-50", 0},
		{"0", "10", 0},
	}

	for _, tt := range tests {
		g := Goal{TargetAmount: dec(tt.target), CurrentAmount: dec(tt.current)}
		if got := g.ProgressPercent(); got != tt.want {
			t.Errorf("ProgressPercent(%s/%s) = %d, want %d", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestGoal_Remaining(t *testing.T) {
	t.Parallel()

	g := Goal{TargetAmount: dec("800"), CurrentAmount: dec("250.50")}
	if got := g.Remaining(); !got.Equal(dec("549.50")) {
		t.Errorf("Remaining() = %s, want 549.50", got)
	}

	g.CurrentAmount = dec("900")
	if got := g.Remaining(); !got.IsZero() {
		t.Errorf("Remaining() over target = %s, want 0", got)
	}
}

func TestGoal_Apply(t *testing.T) {
	t.Parallel()

	g := Goal{TargetAmount: dec("100"), CurrentAmount: dec("90"), Status: StatusActive}

	g.Apply(dec("10"))
	if g.Status != StatusCompleted {
		t.Fatalf("Status after reaching target = %q, want completed", g.Status)
	}

	g.Apply(dec("-0.01"))
	if g.Status != StatusActive {
		t.Errorf("Status after dropping below target = %q, want active", g.Status)
	}
	if !g.CurrentAmount.Equal(dec("99.99")) {
		t.Errorf("CurrentAmount = %s, want 99.99", g.CurrentAmount)
	}

	archived := Goal{TargetAmount: dec("10"), Status: StatusArchived}
	archived.Apply(dec("50"))
	if archived.Status != StatusArchived {
		t.Errorf("archived Status = %q, want archived", archived.Status)
	}
}

func TestGoal_Forecast(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	t.Run("on track", func(t *testing.T) {
		t.Parallel()

		g := Goal{TargetAmount: dec("1200"), CurrentAmount: dec("200"), Deadline: &deadline}
		f := g.Forecast(dec("250"), now)

		if f.MonthsRemaining != 4 {
			t.Errorf("MonthsRemaining = %d, want 4", f.MonthsRemaining)
		}
		want := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
		if f.ProjectedDate == nil || !f.ProjectedDate.Equal(want) {
			t.Errorf("ProjectedDate = %v, want %v", f.ProjectedDate, want)
		}
		if !f.OnTrack {
			t.Error("OnTrack = false, want true")
		}
		if !f.RequiredMonthly.Equal(dec("166.67")) {
			t.Errorf("RequiredMonthly = %s, want 166.67", f.RequiredMonthly)
		}
	})

	t.Run("behind schedule", func(t *testing.T) {
		t.Parallel()

		g := Goal{TargetAmount: dec("1200"), Deadline: &deadline}
		f := g.Forecast(dec("100"), now)

		if f.MonthsRemaining != 12 {
			t.Errorf("MonthsRemaining = %d, want 12", f.MonthsRemaining)
		}
		if f.OnTrack {
			t.Error("OnTrack = true, want false")
		}
	})

	t.Run("no progress", func(t *testing.T) {
		t.Parallel()

		g := Goal{TargetAmount: dec("500")}
		f := g.Forecast(dec("-20"), now)

		if f.MonthsRemaining != -1 || f.ProjectedDate != nil || f.OnTrack {
			t.Errorf("Forecast = %+v, want unreachable", f)
		}
	})

	t.Run("already reached", func(t *testing.T) {
		t.Parallel()

		g := Goal{TargetAmount: dec("500"), CurrentAmount: dec("500")}
		f := g.Forecast(decimal.Zero, now)

		if f.MonthsRemaining != 0 || !f.OnTrack {
			t.Errorf("Forecast = %+v, want reached", f)
		}
	})
}
