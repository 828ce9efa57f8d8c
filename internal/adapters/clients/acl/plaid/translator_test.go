package plaid

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
)

func TestToSyncPage(t *testing.T) {
	t.Parallel()

	raw := `{
		"added": [
			{"transaction_id":"t1","date":"2025-03-04","amount":25.5,"iso_currency_code":"USD","name":"UBER 063015 SF**POOL**","merchant_name":"Uber","pending":false,"personal_finance_category":{"primary":"TRANSPORTATION"}},
			{"transaction_id":"t2","date":"2025-03-05","amount":-1200,"iso_currency_code":"USD","name":"PAYROLL","pending":false},
			{"transaction_id":"t3","date":"2025-03-05","amount":9,"iso_currency_code":"USD","name":"Pending coffee","pending":true}
		],
		"modified": [
			{"transaction_id":"t0","date":"2025-03-01","amount":4,"iso_currency_code":"USD","name":"Corrected"}
		],
		"removed": [{"transaction_id":"gone"}],
		"next_cursor": "cursor-2",
		"has_more": true
	}`
	var dto SyncResponseDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := ToSyncPage(dto)
	want := &integration.PlaidSyncPage{
		Added: []integration.BankTransaction{
			{ExternalID: "t1", Date: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("-25.5"), Currency: "USD", Description: "Uber", Category: "TRANSPORTATION"},
			{ExternalID: "t2", Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("1200"), Currency: "USD", Description: "PAYROLL"},
			{ExternalID: "t0", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("-4"), Currency: "USD", Description: "Corrected"},
		},
		Removed:    []string{"gone", "t0"},
		NextCursor: "cursor-2",
		HasMore:    true,
	}
	opt := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Errorf("ToSyncPage() mismatch (-want +got):\n%s", diff)
	}
}
