package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/clients/acl/exchange"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/platform/httpclient"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CurrencyConverter = (*ExchangeClient)(nil)
	_ ports.HealthChecker     = (*ExchangeClient)(nil)
)

// Default cache settings used when the configured values are not positive.
const (
	DefaultRateCacheTTL  = 24 * time.Hour
	DefaultRateCacheSize = 64
)

// rateFetchTimeout bounds a shared upstream fetch, which outlives the
// caller that started it.
const rateFetchTimeout = 30 * time.Second

// ExchangeClient converts amounts using the exchange-rate API. Rate tables
// are cached per base currency in an expiring LRU, and concurrent misses for
// the same base share a single upstream request.
type ExchangeClient struct {
	req    *Requester
	cache  *expirable.LRU[string, map[string]decimal.Decimal]
	group  singleflight.Group
	logger *slog.Logger
}

// NewExchangeClient creates an ExchangeClient caching up to size rate
// tables for ttl.
func NewExchangeClient(client *httpclient.Client, ttl time.Duration, size int, logger *slog.Logger) *ExchangeClient {
	if ttl <= 0 {
		ttl = DefaultRateCacheTTL
	}
	if size <= 0 {
		size = DefaultRateCacheSize
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExchangeClient{
		req:    NewRequester(client, logger),
		cache:  expirable.NewLRU[string, map[string]decimal.Decimal](size, nil, ttl),
		logger: logger,
	}
}

// Convert returns amount expressed in to, rounded to 2 decimal places.
// Same-currency conversion makes no request.
func (c *ExchangeClient) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, err := domain.NormalizeCurrency(from)
	if err != nil {
		return decimal.Zero, err
	}
	to, err = domain.NormalizeCurrency(to)
	if err != nil {
		return decimal.Zero, err
	}
	if from == to {
		return amount, nil
	}

	rates, err := c.Rates(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := rates[to]
	if !ok {
		return decimal.Zero, domain.NewValidationError("currency", fmt.Sprintf("no rate from %s to %s", from, to))
	}
	return amount.Mul(rate).Round(2), nil
}

// Rates returns the rate table for base, from cache when fresh. A caller
// that gives up stops waiting without failing others sharing the fetch.
func (c *ExchangeClient) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	base, err := domain.NormalizeCurrency(base)
	if err != nil {
		return nil, err
	}
	if rates, ok := c.cache.Get(base); ok {
		return rates, nil
	}

	ch := c.group.DoChan(base, func() (any, error) {
		if rates, ok := c.cache.Get(base); ok {
			return rates, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rateFetchTimeout)
		defer cancel()

		var dto exchange.LatestDTO
		if err := c.req.Do(fetchCtx, http.MethodGet, "/v4/latest/"+base, http.StatusOK, nil, &dto); err != nil {
			return nil, fmt.Errorf("fetch %s rates: %w", base, err)
		}
		rates := exchange.ToRates(dto)
		c.cache.Add(base, rates)
		c.logger.DebugContext(fetchCtx, "exchange rates refreshed",
			slog.String("base", base),
			slog.Int("currencies", len(rates)),
		)
		return rates, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string]decimal.Decimal), nil
	}
}

// Name implements [ports.HealthChecker].
func (c *ExchangeClient) Name() string {
	return "exchange"
}

// HealthCheck implements [ports.HealthChecker] from the breaker state.
func (c *ExchangeClient) HealthCheck(_ context.Context) error {
	return breakerHealth(c.Name(), c.req.CircuitBreakerState())
}
