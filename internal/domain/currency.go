package domain

import "strings"

// DefaultCurrency is used when a user has not chosen a base currency.
const DefaultCurrency = "USD"

// NormalizeCurrency upper-cases and validates an ISO 4217 alphabetic code.
func NormalizeCurrency(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", NewValidationError("currency", "must be a 3-letter ISO 4217 code")
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", NewValidationError("currency", "must be a 3-letter ISO 4217 code")
		}
	}
	return c, nil
}

// IsCurrency reports whether code is already a normalized currency code.
func IsCurrency(code string) bool {
	n, err := NormalizeCurrency(code)
	return err == nil && n == code
}
