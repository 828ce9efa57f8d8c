package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/clients/acl/wise"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
	"github.com/jsamuelsen11/moneygoal/internal/platform/httpclient"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.WiseClient    = (*WiseClient)(nil)
	_ ports.HealthChecker = (*WiseClient)(nil)
)

// WiseClient is the outbound adapter for the Wise platform API. Each call
// carries the user's personal API token as a bearer credential.
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, rate limiting and OpenTelemetry tracing.
type WiseClient struct {
	req *Requester
}

// NewWiseClient creates a WiseClient. The client's BaseURL should point to
// the Wise API root (e.g. "https://api.wise.com").
func NewWiseClient(client *httpclient.Client, logger *slog.Logger) *WiseClient {
	return &WiseClient{req: NewRequester(client, logger)}
}

// ListProfiles fetches GET /v2/profiles. A rejected token surfaces as
// [domain.ErrUnauthorized].
func (c *WiseClient) ListProfiles(ctx context.Context, token string) ([]integration.Profile, error) {
	var dtos []wise.ProfileDTO
	if err := c.req.Do(ctx, http.MethodGet, "/v2/profiles", http.StatusOK, nil, &dtos, WithBearer(token)); err != nil {
		return nil, fmt.Errorf("list wise profiles: %w", err)
	}
	return wise.ToDomainProfiles(dtos), nil
}

// ListBalances fetches the standard balances of a profile.
func (c *WiseClient) ListBalances(ctx context.Context, token string, profileID int64) ([]integration.Balance, error) {
	path := fmt.Sprintf("/v4/profiles/%d/balances?types=STANDARD", profileID)

	var dtos []wise.BalanceDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dtos, WithBearer(token)); err != nil {
		return nil, fmt.Errorf("list wise balances: %w", err)
	}
	return wise.ToDomainBalances(dtos), nil
}

// GetStatement fetches the compact statement of one balance between from
// and the end of the day to.
func (c *WiseClient) GetStatement(ctx context.Context, token string, profileID int64, balance integration.Balance,
	from, to time.Time,
) ([]integration.BankTransaction, error) {
	q := url.Values{}
	q.Set("currency", balance.Currency)
	q.Set("intervalStart", from.UTC().Format(time.RFC3339))
	q.Set("intervalEnd", to.UTC().Add(24*time.Hour-time.Millisecond).Format("2006-01-02T15:04:05.000Z07:00"))
	q.Set("type", "COMPACT")
	path := fmt.Sprintf("/v1/profiles/%d/balance-statements/%d/statement.json?%s", profileID, balance.ID, q.Encode())

	var dto wise.StatementDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto, WithBearer(token)); err != nil {
		return nil, fmt.Errorf("get wise statement: %w", err)
	}
	return wise.ToBankTransactions(dto), nil
}

// Name implements [ports.HealthChecker].
func (c *WiseClient) Name() string {
	return "wise"
}

// HealthCheck implements [ports.HealthChecker] from the breaker state.
func (c *WiseClient) HealthCheck(_ context.Context) error {
	return breakerHealth(c.Name(), c.req.CircuitBreakerState())
}
