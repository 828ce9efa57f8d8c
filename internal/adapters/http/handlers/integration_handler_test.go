package handlers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

// --- Wise ---

func TestWiseConnect(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWiseService(t)
	svc.EXPECT().Connect(mock.Anything, testUserID, "wise-token").Return(&integration.Connection{
		UserID: testUserID, Provider: integration.ProviderWise, AccessToken: "wise-token",
		ExternalID: "12345", CreatedAt: testTime,
	}, nil)

	h := handlers.NewWiseHandler(svc)
	rec := httptest.NewRecorder()
	h.Connect(rec, authedRequest(http.MethodPost, "/api/v1/wise/connect", jsonBody(t, dto.WiseConnectRequest{Token: "wise-token"})))

	requireStatus(t, rec, http.StatusCreated)
	if bytes.Contains(rec.Body.Bytes(), []byte("wise-token")) {
		t.Errorf("response exposes the token: %s", rec.Body.String())
	}
}

func TestWiseSync_Range(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantFrom time.Time
		wantTo   time.Time
	}{
		{name: "no body"},
		{name: "empty object", body: `{}`},
		{
			name:     "explicit",
			body:     `{"from":"2026-01-01","to":"2026-01-31"}`,
			wantFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWiseService(t)
			svc.EXPECT().Sync(mock.Anything, testUserID, tt.wantFrom, tt.wantTo).
				Return(&integration.SyncResult{Imported: 4, Skipped: 1}, nil)

			h := handlers.NewWiseHandler(svc)
			rec := httptest.NewRecorder()
			h.Sync(rec, authedRequest(http.MethodPost, "/api/v1/wise/sync", stringsReader(tt.body)))

			requireStatus(t, rec, http.StatusOK)
			if resp := decodeJSON[dto.SyncResultResponse](t, rec); resp.Imported != 4 || resp.Skipped != 1 {
				t.Errorf("result = %+v", resp)
			}
		})
	}
}

func TestWiseBalances_NotConnected(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWiseService(t)
	svc.EXPECT().Balances(mock.Anything, testUserID).Return(nil, domain.ErrNotFound)

	h := handlers.NewWiseHandler(svc)
	rec := httptest.NewRecorder()
	h.Balances(rec, authedRequest(http.MethodGet, "/api/v1/wise/balances", nil))

	requireStatus(t, rec, http.StatusNotFound)
}

func TestWiseBalances(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWiseService(t)
	svc.EXPECT().Balances(mock.Anything, testUserID).Return([]integration.Balance{
		{ID: 1, Currency: "EUR", Amount: decimal.RequireFromString("120.5")},
	}, nil)

	h := handlers.NewWiseHandler(svc)
	rec := httptest.NewRecorder()
	h.Balances(rec, authedRequest(http.MethodGet, "/api/v1/wise/balances", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.BalanceListResponse](t, rec); len(resp.Balances) != 1 || resp.Balances[0].Amount != "120.50" {
		t.Errorf("balances = %+v", resp)
	}
}

// --- Plaid ---

func TestPlaidStatus(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPlaidService(t)
	svc.EXPECT().Enabled().Return(false)

	h := handlers.NewPlaidHandler(svc)
	rec := httptest.NewRecorder()
	h.Status(rec, authedRequest(http.MethodGet, "/api/v1/plaid/status", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.PlaidStatusResponse](t, rec); resp.Enabled {
		t.Error("enabled = true, want false")
	}
}

func TestPlaidLinkToken_Disabled(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPlaidService(t)
	svc.EXPECT().CreateLinkToken(mock.Anything, testUserID).Return("", domain.ErrUnavailable)

	h := handlers.NewPlaidHandler(svc)
	rec := httptest.NewRecorder()
	h.CreateLinkToken(rec, authedRequest(http.MethodPost, "/api/v1/plaid/link-token", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}

func TestPlaidExchange(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPlaidService(t)
	svc.EXPECT().ExchangePublicToken(mock.Anything, testUserID, "public-sandbox-1").Return(&integration.Connection{
		UserID: testUserID, Provider: integration.ProviderPlaid, ExternalID: "item-1", CreatedAt: testTime,
	}, nil)

	h := handlers.NewPlaidHandler(svc)

	rec := httptest.NewRecorder()
	h.ExchangePublicToken(rec, authedRequest(http.MethodPost, "/api/v1/plaid/exchange",
		jsonBody(t, dto.PlaidExchangeRequest{PublicToken: "public-sandbox-1"})))
	requireStatus(t, rec, http.StatusCreated)
	if resp := decodeJSON[dto.ConnectionResponse](t, rec); resp.Provider != "plaid" || resp.ExternalID != "item-1" {
		t.Errorf("connection = %+v", resp)
	}

	rec = httptest.NewRecorder()
	h.ExchangePublicToken(rec, authedRequest(http.MethodPost, "/api/v1/plaid/exchange", stringsReader(`{}`)))
	requireStatus(t, rec, http.StatusBadRequest)
}

// --- CSV import ---

// multipartUpload builds a multipart request with a "file" part and the
// given form fields.
func multipartUpload(t *testing.T, target, content string, fields map[string]string) *http.Request {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField() error = %v", err)
		}
	}
	if content != "" {
		fw, err := mw.CreateFormFile("file", "statement.csv")
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	req := authedRequest(http.MethodPost, target, buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

const testCSV = "date,description,amount\n2026-02-01,Coffee,-3.50\n"

func TestImportPreview_PassesFileAndOptions(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockImportService(t)
	svc.EXPECT().Preview(mock.Anything, testUserID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ int64, r io.Reader, opts ports.ImportOptions) (*ports.ImportPreview, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("read upload: %v", err)
			}
			if string(data) != testCSV {
				t.Errorf("file = %q, want %q", data, testCSV)
			}
			if opts.Currency != "EUR" || opts.GoalID == nil || *opts.GoalID != 1 || opts.PreviewRows != 5 {
				t.Errorf("opts = %+v", opts)
			}
			return &ports.ImportPreview{
				Columns: []string{"date", "description", "amount"},
				Rows: []ports.ImportRow{{
					Line: 2, Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Description: "Coffee",
					Amount: decimal.RequireFromString("3.5"), Type: transaction.TypeExpense, Currency: "EUR",
				}},
				Total: 1,
			}, nil
		})

	h := handlers.NewImportHandler(svc)
	req := multipartUpload(t, "/api/v1/import/csv/preview", testCSV, map[string]string{
		"currency": "EUR", "goal_id": "1", "preview_rows": "5",
	})

	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ImportPreviewResponse](t, rec)
	if resp.Total != 1 || resp.Rows[0].Amount != "3.50" || resp.Rows[0].Type != "expense" {
		t.Errorf("preview = %+v", resp)
	}
}

func TestImport_BadUpload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    func(t *testing.T) *http.Request
		wantIn string
	}{
		{
			name: "missing file",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "/api/v1/import/csv", "", map[string]string{"currency": "EUR"})
			},
			wantIn: "body.file",
		},
		{
			name: "bad goal id",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "/api/v1/import/csv", testCSV, map[string]string{"goal_id": "x"})
			},
			wantIn: "body.goal_id",
		},
		{
			name: "not multipart",
			req: func(_ *testing.T) *http.Request {
				return authedRequest(http.MethodPost, "/api/v1/import/csv", stringsReader(testCSV))
			},
			wantIn: "body.body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockImportService(t)
			h := handlers.NewImportHandler(svc)

			rec := httptest.NewRecorder()
			h.Import(rec, tt.req(t))

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			found := false
			for _, e := range resp.Errors {
				found = found || e.Location == tt.wantIn
			}
			if !found {
				t.Errorf("errors = %+v, want location %q", resp.Errors, tt.wantIn)
			}
		})
	}
}

func TestImport_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockImportService(t)
	svc.EXPECT().Import(mock.Anything, testUserID, mock.Anything, ports.ImportOptions{}).
		Return(&ports.ImportResult{BatchID: "batch-1", Imported: 1}, nil)

	h := handlers.NewImportHandler(svc)
	rec := httptest.NewRecorder()
	h.Import(rec, multipartUpload(t, "/api/v1/import/csv", testCSV, nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ImportResultResponse](t, rec); resp.BatchID != "batch-1" || resp.Imported != 1 {
		t.Errorf("result = %+v", resp)
	}
}
