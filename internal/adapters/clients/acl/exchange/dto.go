// Package exchange implements the Anti-Corruption Layer translators for the
// exchange-rate REST API.
package exchange

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LatestDTO matches GET /v4/latest/{base}.
type LatestDTO struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// ToRates returns the rate table keyed by upper-case currency code. The base
// currency always maps to 1.
func ToRates(dto LatestDTO) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(dto.Rates)+1)
	for code, rate := range dto.Rates {
		if !rate.IsPositive() {
			continue
		}
		rates[strings.ToUpper(code)] = rate
	}
	if dto.Base != "" {
		rates[strings.ToUpper(dto.Base)] = decimal.NewFromInt(1)
	}
	return rates
}
