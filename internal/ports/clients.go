package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain/chat"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
)

// CurrencyConverter converts amounts between ISO 4217 currencies.
// Implemented by the exchange-rate ACL adapter.
type CurrencyConverter interface {
	// Convert returns amount expressed in to. Same-currency conversion
	// returns amount unchanged without I/O.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)

	// Rates returns the rate of every known currency against base.
	Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// WiseClient defines the client port for the Wise API. The API token is
// per user and passed on every call.
type WiseClient interface {
	// ListProfiles returns the profiles the token can access.
	// Returns domain.ErrUnauthorized for a rejected token.
	ListProfiles(ctx context.Context, token string) ([]integration.Profile, error)

	// ListBalances returns the balances of a profile.
	ListBalances(ctx context.Context, token string, profileID int64) ([]integration.Balance, error)

	// GetStatement returns the statement lines of one balance in [from, to].
	GetStatement(ctx context.Context, token string, profileID int64, balance integration.Balance,
		from, to time.Time) ([]integration.BankTransaction, error)
}

// PlaidClient defines the client port for the Plaid API.
type PlaidClient interface {
	// CreateLinkToken starts a Plaid Link session for clientUserID.
	CreateLinkToken(ctx context.Context, clientUserID string) (string, error)

	// ExchangePublicToken swaps a Link public token for an access token and item id.
	ExchangePublicToken(ctx context.Context, publicToken string) (accessToken, itemID string, err error)

	// SyncTransactions returns the next page of changes after cursor.
	// Amounts are normalized so that positive means money in.
	SyncTransactions(ctx context.Context, accessToken, cursor string) (*integration.PlaidSyncPage, error)
}

// LLMRequest is a single completion request.
type LLMRequest struct {
	// System is the system instruction.
	System string
	// History is prior conversation, oldest first.
	History []chat.Message
	// Prompt is the new user turn.
	Prompt string
	// JSON asks the model for an application/json response.
	JSON bool
}

// LLMClient generates text completions. Implemented by the Gemini adapter.
// Returns domain.ErrUnavailable when no model is configured.
type LLMClient interface {
	Generate(ctx context.Context, req LLMRequest) (string, error)
}

// MessageSender delivers outbound text messages on one channel.
type MessageSender interface {
	// Channel names the delivery channel ("whatsapp" or "twilio").
	Channel() string

	// SendText sends body to the normalized phone number to.
	SendText(ctx context.Context, to, body string) error
}

// TokenIssuer signs and verifies API bearer tokens.
type TokenIssuer interface {
	Issue(userID int64) (token string, expiresAt time.Time, err error)

	// Verify returns domain.ErrUnauthorized for any invalid token.
	Verify(token string) (int64, error)
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns domain.ErrUnauthorized on mismatch.
	Compare(hash, password string) error
}
