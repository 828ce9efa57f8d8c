package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/user"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

func validUser() *user.User {
	return &user.User{
		ID:           testUserID,
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: "$2a$10$hash",
		BaseCurrency: "BRL",
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().Register(mock.Anything, ports.RegisterInput{
		Email:        "ana@example.com",
		Name:         "Ana",
		Password:     "correct horse",
		BaseCurrency: "BRL",
	}).Return(&ports.AuthResult{
		User:      validUser(),
		Token:     "jwt-token",
		ExpiresAt: testTime.Add(24 * time.Hour),
	}, nil)

	h := handlers.NewAuthHandler(svc)
	body := jsonBody(t, dto.RegisterRequest{
		Email: "ana@example.com", Name: "Ana", Password: "correct horse", BaseCurrency: "BRL",
	})

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.AuthResponse](t, rec)
	if resp.Token != "jwt-token" || resp.TokenType != "Bearer" {
		t.Errorf("token = %q/%q, want jwt-token/Bearer", resp.Token, resp.TokenType)
	}
	if resp.User.Email != "ana@example.com" || resp.User.BaseCurrency != "BRL" {
		t.Errorf("user = %+v", resp.User)
	}
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("email already registered: %w", domain.ErrConflict))

	h := handlers.NewAuthHandler(svc)
	body := jsonBody(t, dto.RegisterRequest{Email: "ana@example.com", Name: "Ana", Password: "correct horse"})

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body))

	requireStatus(t, rec, http.StatusConflict)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       dto.LoginRequest
		svcErr     error
		callsSvc   bool
		wantStatus int
	}{
		{
			name:       "success",
			body:       dto.LoginRequest{Email: "ana@example.com", Password: "correct horse"},
			callsSvc:   true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       dto.LoginRequest{Email: "ana@example.com", Password: "nope"},
			svcErr:     fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized),
			callsSvc:   true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       dto.LoginRequest{Email: "ana@example.com"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockAuthService(t)
			if tt.callsSvc {
				var res *ports.AuthResult
				if tt.svcErr == nil {
					res = &ports.AuthResult{User: validUser(), Token: "jwt-token", ExpiresAt: testTime}
				}
				svc.EXPECT().Login(mock.Anything, tt.body.Email, tt.body.Password).Return(res, tt.svcErr)
			}

			h := handlers.NewAuthHandler(svc)
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, tt.body)))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestGetSettings_NeverExposesPasswordHash(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().GetSettings(mock.Anything, testUserID).Return(validUser(), nil)

	h := handlers.NewAuthHandler(svc)
	rec := httptest.NewRecorder()
	h.GetSettings(rec, authedRequest(http.MethodGet, "/api/v1/settings", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	for k, v := range resp {
		if v == "$2a$10$hash" {
			t.Errorf("key %q exposes the password hash", k)
		}
	}
}

func TestUpdateSettings_PassesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	updated := validUser()
	updated.WhatsAppPhone = "+5511987654321"
	svc.EXPECT().UpdateSettings(mock.Anything, testUserID, mock.MatchedBy(func(in ports.SettingsUpdate) bool {
		return in.Name == nil && in.BaseCurrency == nil &&
			in.WhatsAppPhone != nil && *in.WhatsAppPhone == "+55 11 98765-4321"
	})).Return(updated, nil)

	h := handlers.NewAuthHandler(svc)
	body := jsonBody(t, map[string]string{"whatsapp_phone": "+55 11 98765-4321"})

	rec := httptest.NewRecorder()
	h.UpdateSettings(rec, authedRequest(http.MethodPatch, "/api/v1/settings", body))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.UserResponse](t, rec); resp.WhatsAppPhone != "+5511987654321" {
		t.Errorf("whatsapp_phone = %q, want +5511987654321", resp.WhatsAppPhone)
	}
}
