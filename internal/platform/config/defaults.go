package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultGeminiTemperature  = 0.7
	defaultGeminiHistoryLimit = 20

	defaultExchangeCacheSize = 64
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.path": "moneygoal.db",

		"auth.issuer":    "moneygoal",
		"auth.token_ttl": "168h",

		"gemini.model":         "gemini-2.5-flash",
		"gemini.temperature":   defaultGeminiTemperature,
		"gemini.history_limit": defaultGeminiHistoryLimit,

		"exchange.cache_ttl":  "24h",
		"exchange.cache_size": defaultExchangeCacheSize,

		"plaid.environment": "sandbox",
		"plaid.client_name": "MoneyGoal",

		"twilio.webhook_url": "",

		"scheduler.enabled":      true,
		"scheduler.spec":         "@daily",
		"scheduler.run_on_start": true,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "moneygoal",
	}

	baseURLs := map[string]string{
		"wise":     "https://api.wise.com",
		"exchange": "https://api.exchangerate-api.com",
		"plaid":    "https://sandbox.plaid.com",
		"whatsapp": "https://graph.facebook.com/v19.0",
		"twilio":   "https://api.twilio.com",
	}
	for name, url := range baseURLs {
		prefix := "clients." + name + "."
		d[prefix+"base_url"] = url
		d[prefix+"timeout"] = "30s"
		d[prefix+"retry.max_attempts"] = defaultRetryMaxAttempts
		d[prefix+"retry.initial_interval"] = "100ms"
		d[prefix+"retry.max_interval"] = "10s"
		d[prefix+"retry.multiplier"] = defaultRetryMultiplier
		d[prefix+"circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
		d[prefix+"circuit_breaker.timeout"] = "30s"
		d[prefix+"circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
		d[prefix+"rate_limit.requests_per_second"] = 0
		d[prefix+"rate_limit.burst_size"] = 1
	}

	return d
}
