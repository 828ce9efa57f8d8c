package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validGoal() goal.Goal {
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	return goal.Goal{
		ID:            7,
		UserID:        1,
		Name:          "Japan trip",
		TargetAmount:  decimal.RequireFromString("4000"),
		CurrentAmount: decimal.RequireFromString("1000.5"),
		Currency:      "EUR",
		Deadline:      &deadline,
		Status:        goal.StatusActive,
		CreatedAt:     testTime,
		UpdatedAt:     testTime,
	}
}

func TestToGoalResponse(t *testing.T) {
	t.Parallel()

	g := validGoal()
	got := dto.ToGoalResponse(&g)

	deadline := "2026-12-31"
	want := dto.GoalResponse{
		ID:              7,
		Name:            "Japan trip",
		TargetAmount:    "4000.00",
		CurrentAmount:   "1000.50",
		Remaining:       "2999.50",
		ProgressPercent: 25,
		Currency:        "EUR",
		Deadline:        &deadline,
		Status:          "active",
		CreatedAt:       "2026-02-12T15:04:05Z",
		UpdatedAt:       "2026-02-12T15:04:05Z",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToGoalResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestToTransactionResponse_GoalAmountOnlyWhenLinked(t *testing.T) {
	t.Parallel()

	goalID := int64(7)
	tests := []struct {
		name           string
		goalID         *int64
		wantGoalAmount string
	}{
		{name: "linked", goalID: &goalID, wantGoalAmount: "-9.20"},
		{name: "unlinked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tx := transaction.Transaction{
				ID:          3,
				GoalID:      tt.goalID,
				Type:        transaction.TypeExpense,
				Amount:      decimal.RequireFromString("10"),
				Currency:    "USD",
				Description: "Lunch",
				Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				Source:      transaction.SourceManual,
				GoalAmount:  decimal.RequireFromString("-9.2"),
				CreatedAt:   testTime,
			}
			got := dto.ToTransactionResponse(&tx)

			if got.Amount != "10.00" || got.Date != "2025-03-01" || got.Source != "manual" {
				t.Errorf("ToTransactionResponse() = %+v", got)
			}
			if got.GoalAmount != tt.wantGoalAmount {
				t.Errorf("GoalAmount = %q, want %q", got.GoalAmount, tt.wantGoalAmount)
			}
		})
	}
}

func TestListResponses_EmptyIsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToGoalListResponse(nil))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"goals":[],"count":0}` {
		t.Errorf("json = %s, want empty array", data)
	}
}

func TestToConnectionResponse_OmitsToken(t *testing.T) {
	t.Parallel()

	resp := dto.ToConnectionResponse(&integration.Connection{
		UserID:      1,
		Provider:    integration.ProviderWise,
		AccessToken: "secret-token",
		ExternalID:  "12345",
		CreatedAt:   testTime,
	})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	for k, v := range m {
		if v == "secret-token" {
			t.Errorf("JSON key %q exposes the access token", k)
		}
	}
	if m["provider"] != "wise" || m["external_id"] != "12345" {
		t.Errorf("JSON = %s", data)
	}
}

func TestToForecastResponse(t *testing.T) {
	t.Parallel()

	projected := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	got := dto.ToForecastResponse(&ports.GoalForecast{
		Goal: validGoal(),
		Forecast: goal.Forecast{
			MonthlyContribution: decimal.RequireFromString("500"),
			MonthsRemaining:     6,
			ProjectedDate:       &projected,
			OnTrack:             true,
		},
		Narrative: "You are on track.",
	})

	if got.MonthlyContribution != "500.00" || got.MonthsRemaining != 6 || !got.OnTrack {
		t.Errorf("ToForecastResponse() = %+v", got)
	}
	if got.ProjectedDate == nil || *got.ProjectedDate != "2026-08-01" {
		t.Errorf("ProjectedDate = %v, want 2026-08-01", got.ProjectedDate)
	}
	if got.RequiredMonthly != "" {
		t.Errorf("RequiredMonthly = %q, want omitted", got.RequiredMonthly)
	}
}

func TestToImportResultResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToImportResultResponse(&ports.ImportResult{
		BatchID:  "b-1",
		Imported: 2,
		Skipped:  1,
		Failed:   1,
		Errors:   []ports.ImportRowError{{Line: 5, Message: "bad date"}},
	})

	want := dto.ImportResultResponse{
		BatchID:  "b-1",
		Imported: 2,
		Skipped:  1,
		Failed:   1,
		Errors:   []dto.ImportRowErrorResponse{{Line: 5, Message: "bad date"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToImportResultResponse() mismatch (-want +got):\n%s", diff)
	}
}
