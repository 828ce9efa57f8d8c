package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/clients/acl/plaid"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/platform/httpclient"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PlaidClient   = (*PlaidClient)(nil)
	_ ports.HealthChecker = (*PlaidClient)(nil)
)

const plaidSyncPageSize = 250

// PlaidClient is the outbound adapter for the Plaid API. Credentials travel
// in the JSON body of every request, as Plaid requires.
type PlaidClient struct {
	req        *Requester
	creds      plaid.Credentials
	clientName string
}

// NewPlaidClient creates a PlaidClient for the environment at the client's
// BaseURL (e.g. "https://sandbox.plaid.com").
func NewPlaidClient(client *httpclient.Client, cfg config.PlaidConfig, logger *slog.Logger) *PlaidClient {
	return &PlaidClient{
		req:        NewRequester(client, logger),
		creds:      plaid.Credentials{ClientID: cfg.ClientID, Secret: cfg.Secret},
		clientName: cfg.ClientName,
	}
}

// CreateLinkToken starts a Link session for the transactions product.
func (c *PlaidClient) CreateLinkToken(ctx context.Context, clientUserID string) (string, error) {
	body := plaid.LinkTokenRequestDTO{
		Credentials:  c.creds,
		ClientName:   c.clientName,
		User:         plaid.LinkUserDTO{ClientUserID: clientUserID},
		Products:     []string{"transactions"},
		CountryCodes: []string{"US"},
		Language:     "en",
	}
	var resp plaid.LinkTokenResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, "/link/token/create", http.StatusOK, body, &resp); err != nil {
		return "", fmt.Errorf("create plaid link token: %w", err)
	}
	return resp.LinkToken, nil
}

// ExchangePublicToken swaps a Link public token for a long-lived access token.
func (c *PlaidClient) ExchangePublicToken(ctx context.Context, publicToken string) (string, string, error) {
	body := plaid.ExchangeRequestDTO{Credentials: c.creds, PublicToken: publicToken}
	var resp plaid.ExchangeResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, "/item/public_token/exchange", http.StatusOK, body, &resp); err != nil {
		return "", "", fmt.Errorf("exchange plaid public token: %w", err)
	}
	return resp.AccessToken, resp.ItemID, nil
}

// SyncTransactions fetches one page of changes after cursor.
func (c *PlaidClient) SyncTransactions(ctx context.Context, accessToken, cursor string) (*integration.PlaidSyncPage, error) {
	body := plaid.SyncRequestDTO{
		Credentials: c.creds,
		AccessToken: accessToken,
		Cursor:      cursor,
		Count:       plaidSyncPageSize,
	}
	var resp plaid.SyncResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, "/transactions/sync", http.StatusOK, body, &resp); err != nil {
		return nil, fmt.Errorf("sync plaid transactions: %w", err)
	}
	return plaid.ToSyncPage(resp), nil
}

// Name implements [ports.HealthChecker].
func (c *PlaidClient) Name() string {
	return "plaid"
}

// HealthCheck implements [ports.HealthChecker] from the breaker state.
func (c *PlaidClient) HealthCheck(_ context.Context) error {
	return breakerHealth(c.Name(), c.req.CircuitBreakerState())
}
