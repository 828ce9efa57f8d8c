package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

func strPtr(s string) *string { return &s }

func TestNewAuthService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, mocks.NewMockPasswordHasher(t), mocks.NewMockTokenIssuer(t), nil)
	if svc.logger == nil {
		t.Fatal("NewAuthService(nil logger) should create a no-op logger, got nil")
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates the user and issues a token", func(t *testing.T) {
		t.Parallel()
		s := newTestStore(t)
		hasher := mocks.NewMockPasswordHasher(t)
		issuer := mocks.NewMockTokenIssuer(t)
		expires := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
		issuer.EXPECT().Issue(mock.Anything).Return("jwt", expires, nil)
		svc := NewAuthService(s, hasher, issuer, discardLogger())

		res, err := svc.Register(context.Background(), ports.RegisterInput{
			Email:        " Ana@Example.com ",
			Name:         "Ana",
			Password:     "s3cret-pass",
			BaseCurrency: "eur",
		})
		require.NoError(t, err)
		assert.Equal(t, "jwt", res.Token)
		assert.Equal(t, expires, res.ExpiresAt)
		assert.Equal(t, "ana@example.com", res.User.Email)
		assert.Equal(t, "EUR", res.User.BaseCurrency)
		assert.Equal(t, "hashed", res.User.PasswordHash)
	})

	t.Run("short password and bad email are reported together", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(newTestStore(t), mocks.NewMockPasswordHasher(t), mocks.NewMockTokenIssuer(t), discardLogger())

		_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "nope", Name: "Ana", Password: "short"})
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), "error = %v", err)
		assert.Contains(t, verr.Fields, "password")
		assert.Contains(t, verr.Fields, "email")
	})

	t.Run("password longer than bcrypt accepts is a validation error", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(newTestStore(t), mocks.NewMockPasswordHasher(t), mocks.NewMockTokenIssuer(t), discardLogger())

		// 25 characters, 75 bytes.
		_, err := svc.Register(context.Background(), ports.RegisterInput{
			Email: "ana@example.com", Name: "Ana", Password: strings.Repeat("€", 25),
		})
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), "error = %v", err)
		assert.Equal(t, "must be at most 72 bytes", verr.Fields["password"])
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		t.Parallel()
		s := newTestStore(t)
		seedUser(t, s, "ana@example.com", "USD")
		hasher := mocks.NewMockPasswordHasher(t)
		hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		svc := NewAuthService(s, hasher, mocks.NewMockTokenIssuer(t), discardLogger())

		_, err := svc.Register(context.Background(), ports.RegisterInput{
			Email: "ana@example.com", Name: "Ana", Password: "long-enough",
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		email      string
		compareErr error
		wantErr    error
	}{
		{name: "valid credentials", email: "ANA@example.com"},
		{name: "wrong password", email: "ana@example.com", compareErr: domain.ErrUnauthorized, wantErr: domain.ErrUnauthorized},
		{name: "unknown email", email: "bob@example.com", wantErr: domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestStore(t)
			seedUser(t, s, "ana@example.com", "USD")
			hasher := mocks.NewMockPasswordHasher(t)
			issuer := mocks.NewMockTokenIssuer(t)
			if tt.email != "bob@example.com" {
				hasher.EXPECT().Compare("hash", "pw").Return(tt.compareErr)
			}
			if tt.wantErr == nil {
				issuer.EXPECT().Issue(mock.Anything).Return("jwt", time.Now().Add(time.Hour), nil)
			}
			svc := NewAuthService(s, hasher, issuer, discardLogger())

			res, err := svc.Login(context.Background(), tt.email, "pw")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt", res.Token)
		})
	}
}

func TestAuthService_UpdateSettings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	ana := seedUser(t, s, "ana@example.com", "USD")
	bob := seedUser(t, s, "bob@example.com", "USD")
	svc := NewAuthService(s, mocks.NewMockPasswordHasher(t), mocks.NewMockTokenIssuer(t), discardLogger())

	updated, err := svc.UpdateSettings(ctx, ana.ID, ports.SettingsUpdate{
		BaseCurrency:  strPtr("brl"),
		WhatsAppPhone: strPtr("+55 (11) 98765-4321"),
	})
	require.NoError(t, err)
	assert.Equal(t, "BRL", updated.BaseCurrency)
	assert.Equal(t, "+5511987654321", updated.WhatsAppPhone)
	assert.Equal(t, "Ana", updated.Name)

	_, err = svc.UpdateSettings(ctx, bob.ID, ports.SettingsUpdate{WhatsAppPhone: strPtr("+5511987654321")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.UpdateSettings(ctx, bob.ID, ports.SettingsUpdate{BaseCurrency: strPtr("dollars")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
