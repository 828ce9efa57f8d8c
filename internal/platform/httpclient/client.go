// Package httpclient is the outbound HTTP client shared by the Wise, Plaid,
// exchange rate and messaging integrations. Every request runs through
//
//	Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → Retry → HTTP
//
// One Client is built per integration from its clients.<name> config block:
//
//	rates := httpclient.New(&cfg.Clients.Exchange, "exchange", metrics, logger)
//	meta := httpclient.New(&cfg.Clients.WhatsApp, "whatsapp", metrics, logger)
//
// Requests are plain *http.Request values, retried on transport errors, 429
// and 5xx. A request that must not be replayed, such as an outbound WhatsApp
// message, is marked with AtMostOnce:
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, rates.BaseURL()+"/v4/latest/USD", nil)
//	resp, err := rates.Do(ctx, req)
//
//	resp, err = meta.Do(httpclient.AtMostOnce(ctx), sendReq)
//
// The inbound request and correlation ids are forwarded when the HTTP
// middleware has stored them with WithRequestID and WithCorrelationID.
// URLs reach spans and logs through SafeURL only, because some providers
// accept credentials in the query string.
//
// Health is read from the breaker without a network call:
//
//	closed    → healthy
//	half-open → degraded, a few trial requests are let through
//	open      → failing, requests are rejected with gobreaker.ErrOpenState
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/platform/telemetry"
)

// userAgentPrefix identifies this service to downstream APIs.
const userAgentPrefix = "moneygoal/"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request id for forwarding as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation id for forwarding as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// retryConfig is the retry policy copied out of config.RetryConfig.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client calls one integration. It is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds the client for the integration named serviceName ("wise",
// "plaid", "exchange", "whatsapp", "twilio"). The name labels spans, metrics
// and the breaker. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     newBreaker(cfg.CircuitBreaker, serviceName, logger),
		limiter:     limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// newBreaker trips after MaxFailures consecutive failures and lets
// HalfOpenLimit trial requests through once Timeout has elapsed.
func newBreaker(cfg config.CircuitBreakerConfig, name string, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("integration circuit breaker changed state",
				slog.String("integration", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req. A retryable failure counts once against the breaker no
// matter how many attempts it took.
//
// On success resp is non-nil and the caller closes its body. When every
// attempt ended in a retryable status, resp holds the last response and err
// is non-nil; the caller still closes the body. A breaker rejection, a rate
// limiter wait cut short by ctx, or a transport error returns a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		// The span context carries cancellation and trace propagation.
		req = req.WithContext(spanCtx)

		sendErr := c.doWithRetry(spanCtx, req, &resp)
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if sendErr != nil {
			span.RecordError(sendErr)
			span.SetStatus(codes.Error, sendErr.Error())
		}
		return struct{}{}, sendErr
	})

	c.recordMetrics(ctx, method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the configured base URL without a trailing path.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the integration name. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck maps the breaker state: closed is nil, half-open is degraded
// and open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// CircuitBreakerState returns "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// injectHeaders sets User-Agent unless the caller chose one, and forwards
// the ids stored in ctx.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgentPrefix+c.serviceName)
	}
	forward := []struct {
		header string
		key    any
	}{
		{"X-Request-ID", requestIDKey{}},
		{"X-Correlation-ID", correlationIDKey{}},
	}
	for _, f := range forward {
		if id, ok := ctx.Value(f.key).(string); ok && id != "" {
			req.Header.Set(f.header, id)
		}
	}
}

// startSpan opens a client span named after the integration and writes the
// W3C trace headers into req.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", SafeURL(req.URL)),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// outcome labels a finished call for the client metrics.
func outcome(resp *http.Response, err error) (status int, result string) {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return 0, "circuit_open"
	case resp == nil:
		return 0, "error"
	case resp.StatusCode < http.StatusBadRequest:
		return resp.StatusCode, "success"
	default:
		return resp.StatusCode, "error"
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := outcome(resp, err)
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// SafeURL renders u without query, fragment or user info.
func SafeURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}).String()
}

// toUint32 clamps v into the uint32 range; negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
