package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/user"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService on top of the user repository,
// a password hasher and a bearer token issuer.
type AuthService struct {
	users     ports.UserRepository
	passwords ports.PasswordHasher
	tokens    ports.TokenIssuer
	logger    *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(users ports.UserRepository, passwords ports.PasswordHasher, tokens ports.TokenIssuer,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		logger:    orDiscard(logger),
	}
}

// Register creates an account and signs the user in.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	s.logger.InfoContext(ctx, "registering user")

	u := &user.User{
		Email:        in.Email,
		Name:         strings.TrimSpace(in.Name),
		BaseCurrency: in.BaseCurrency,
	}
	fields := make(map[string]string)
	if err := u.Validate(); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		fields = verr.Fields
	}
	switch {
	case len(in.Password) < user.MinPasswordLength:
		fields["password"] = fmt.Sprintf("must be at least %d characters", user.MinPasswordLength)
	case len(in.Password) > user.MaxPasswordBytes:
		fields["password"] = fmt.Sprintf("must be at most %d bytes", user.MaxPasswordBytes)
	}
	if err := domain.FieldsError(fields); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	u.PasswordHash = hash

	created, err := s.users.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.issue(ctx, created)
}

// Login verifies the email and password. Unknown emails and wrong passwords
// both report domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	s.logger.InfoContext(ctx, "user login")

	u, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
		}
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if err := s.passwords.Compare(u.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}

	return s.issue(ctx, u)
}

// GetSettings returns the user's account.
func (s *AuthService) GetSettings(ctx context.Context, userID int64) (*user.User, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch settings",
			slog.String("operation", "GetSettings"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// UpdateSettings applies the non-nil fields of in. An empty WhatsAppPhone
// unlinks the number.
func (s *AuthService) UpdateSettings(ctx context.Context, userID int64, in ports.SettingsUpdate) (*user.User, error) {
	s.logger.InfoContext(ctx, "updating settings", slog.Int64("user_id", userID))

	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.BaseCurrency != nil {
		u.BaseCurrency = *in.BaseCurrency
	}
	if in.WhatsAppPhone != nil {
		u.WhatsAppPhone = *in.WhatsAppPhone
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateUser(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("whatsapp number linked to another account: %w", domain.ErrConflict)
		}
		s.logger.ErrorContext(ctx, "failed to update settings",
			slog.String("operation", "UpdateSettings"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *AuthService) issue(ctx context.Context, u *user.User) (*ports.AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(u.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "issue"),
			slog.Int64("user_id", u.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &ports.AuthResult{User: u, Token: token, ExpiresAt: expiresAt}, nil
}
