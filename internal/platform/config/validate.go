package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/robfig/cron/v3"
)

// minJWTSecretLength is the shortest accepted HS256 signing secret.
const minJWTSecretLength = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Auth.validate(),
		c.Clients.Wise.validate("clients.wise"),
		c.Clients.Exchange.validate("clients.exchange"),
		c.Clients.Plaid.validate("clients.plaid"),
		c.Clients.WhatsApp.validate("clients.whatsapp"),
		c.Clients.Twilio.validate("clients.twilio"),
		c.Exchange.validate(),
		c.WhatsApp.validate(),
		c.Twilio.validate(),
		c.Scheduler.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	if d.Path == "" {
		return errors.New("database.path must not be empty")
	}
	return nil
}

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters", minJWTSecretLength))
	}
	if a.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(key string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", key))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", key))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", key, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", key, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			key, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", key))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled", key))
	}

	return errors.Join(errs...)
}

func (e *ExchangeConfig) validate() error {
	var errs []error

	if e.CacheTTL <= 0 {
		errs = append(errs, errors.New("exchange.cache_ttl must be positive"))
	}
	if e.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("exchange.cache_size must be >= 1, got %d", e.CacheSize))
	}

	return errors.Join(errs...)
}

// Inbound webhooks are only trusted with a signature, so an enabled channel
// needs everything its verification uses.
func (w *WhatsAppConfig) validate() error {
	if !w.Enabled() {
		return nil
	}
	var errs []error
	if w.AppSecret == "" {
		errs = append(errs, errors.New("whatsapp.app_secret must not be empty when whatsapp is enabled"))
	}
	if w.VerifyToken == "" {
		errs = append(errs, errors.New("whatsapp.verify_token must not be empty when whatsapp is enabled"))
	}
	return errors.Join(errs...)
}

func (t *TwilioConfig) validate() error {
	if !t.Enabled() {
		return nil
	}
	u, err := url.Parse(t.WebhookURL)
	if t.WebhookURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("twilio.webhook_url must be an absolute URL when twilio is enabled")
	}
	return nil
}

func (s *SchedulerConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	if _, err := cron.ParseStandard(s.Spec); err != nil {
		return fmt.Errorf("scheduler.spec %q is invalid: %w", s.Spec, err)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
