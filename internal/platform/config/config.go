// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	Clients   ClientsConfig   `koanf:"clients"`
	Gemini    GeminiConfig    `koanf:"gemini"`
	Exchange  ExchangeConfig  `koanf:"exchange"`
	Plaid     PlaidConfig     `koanf:"plaid"`
	WhatsApp  WhatsAppConfig  `koanf:"whatsapp"`
	Twilio    TwilioConfig    `koanf:"twilio"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds the SQLite store location.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// AuthConfig holds bearer token settings for the public API.
type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret"`
	Issuer    string        `koanf:"issuer"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

// ClientsConfig groups the outbound HTTP client settings, one per integration.
type ClientsConfig struct {
	Wise     ClientConfig `koanf:"wise"`
	Exchange ClientConfig `koanf:"exchange"`
	Plaid    ClientConfig `koanf:"plaid"`
	WhatsApp ClientConfig `koanf:"whatsapp"`
	Twilio   ClientConfig `koanf:"twilio"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// GeminiConfig holds the LLM settings used by the advisor, the WhatsApp
// message parser and forecast narratives. An empty APIKey disables the LLM.
type GeminiConfig struct {
	APIKey       string  `koanf:"api_key"`
	Model        string  `koanf:"model"`
	Temperature  float64 `koanf:"temperature"`
	HistoryLimit int     `koanf:"history_limit"`
}

// ExchangeConfig holds exchange-rate cache settings.
type ExchangeConfig struct {
	CacheTTL  time.Duration `koanf:"cache_ttl"`
	CacheSize int           `koanf:"cache_size"`
}

// PlaidConfig holds Plaid credentials. Plaid is disabled when ClientID is empty.
type PlaidConfig struct {
	ClientID    string `koanf:"client_id"`
	Secret      string `koanf:"secret"`
	Environment string `koanf:"environment"`
	ClientName  string `koanf:"client_name"`
}

// Enabled reports whether Plaid credentials are configured.
func (p PlaidConfig) Enabled() bool {
	return p.ClientID != "" && p.Secret != ""
}

// WhatsAppConfig holds WhatsApp Cloud API settings. Inbound webhooks must
// carry an X-Hub-Signature-256 made with AppSecret.
type WhatsAppConfig struct {
	PhoneNumberID string `koanf:"phone_number_id"`
	AccessToken   string `koanf:"access_token"`
	VerifyToken   string `koanf:"verify_token"`
	AppSecret     string `koanf:"app_secret"`
}

// Enabled reports whether outbound Cloud API messages can be sent.
func (w WhatsAppConfig) Enabled() bool {
	return w.PhoneNumberID != "" && w.AccessToken != ""
}

// TwilioConfig holds Twilio messaging settings. Inbound webhooks must carry
// an X-Twilio-Signature made with AuthToken over WebhookURL.
type TwilioConfig struct {
	AccountSID string `koanf:"account_sid"`
	AuthToken  string `koanf:"auth_token"`
	FromNumber string `koanf:"from_number"`
	// WebhookURL is the public URL Twilio posts to, used for signatures.
	WebhookURL string `koanf:"webhook_url"`
}

// Enabled reports whether outbound Twilio messages can be sent.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

// SchedulerConfig holds recurring expense scheduler settings.
type SchedulerConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Spec       string `koanf:"spec"`
	RunOnStart bool   `koanf:"run_on_start"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
