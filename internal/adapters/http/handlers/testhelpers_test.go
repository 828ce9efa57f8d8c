package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/bill"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

const testUserID int64 = 42

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// authedRequest builds a request as if it had passed Authenticate for
// testUserID.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middleware.WithUserID(req.Context(), testUserID))
}

func int64Ptr(i int64) *int64 { return &i }

func validGoal() goal.Goal {
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	return goal.Goal{
		ID:            1,
		UserID:        testUserID,
		Name:          "Emergency fund",
		TargetAmount:  decimal.RequireFromString("5000"),
		CurrentAmount: decimal.RequireFromString("1250"),
		Currency:      "USD",
		Deadline:      &deadline,
		Status:        goal.StatusActive,
		CreatedAt:     testTime,
		UpdatedAt:     testTime,
	}
}

func validTransaction() transaction.Transaction {
	return transaction.Transaction{
		ID:          10,
		UserID:      testUserID,
		GoalID:      int64Ptr(1),
		Type:        transaction.TypeIncome,
		Amount:      decimal.RequireFromString("200"),
		Currency:    "USD",
		Description: "Salary top-up",
		Date:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Source:      transaction.SourceManual,
		GoalAmount:  decimal.RequireFromString("200"),
		CreatedAt:   testTime,
	}
}

func validBill() bill.Bill {
	return bill.Bill{
		ID:        5,
		UserID:    testUserID,
		Name:      "Rent",
		Amount:    decimal.RequireFromString("1200"),
		Currency:  "USD",
		DueDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Frequency: domain.FrequencyMonthly,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }
