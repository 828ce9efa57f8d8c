package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		verifyErr  error
		wantStatus int
		wantUserID int64
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantUserID: 42},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK, wantUserID: 42},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{
			name:       "rejected token",
			header:     "Bearer expired",
			verifyErr:  fmt.Errorf("token expired: %w", domain.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := mocks.NewMockTokenIssuer(t)
			switch {
			case tt.wantUserID != 0:
				tokens.EXPECT().Verify("good").Return(tt.wantUserID, nil)
			case tt.verifyErr != nil:
				tokens.EXPECT().Verify("expired").Return(0, tt.verifyErr)
			}

			var gotUserID int64
			handler := middleware.Authenticate(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = middleware.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("user id = %d, want %d", gotUserID, tt.wantUserID)
			}
			if tt.wantStatus == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("WWW-Authenticate header not set on 401")
			}
		})
	}
}

func TestUserIDFromContext_NotSet(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if id, ok := middleware.UserIDFromContext(req.Context()); ok || id != 0 {
		t.Errorf("UserIDFromContext = (%d, %v), want (0, false)", id, ok)
	}
}
