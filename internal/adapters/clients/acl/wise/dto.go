// Package wise implements the Anti-Corruption Layer translators for the Wise
// platform API (profiles, balances and balance statements).
package wise

import "github.com/shopspring/decimal"

// ProfileDTO matches an element of GET /v2/profiles.
type ProfileDTO struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	FullName string `json:"fullName"`
}

// MoneyDTO is a Wise amount object. Values arrive as JSON numbers.
type MoneyDTO struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// BalanceDTO matches an element of GET /v4/profiles/{id}/balances.
type BalanceDTO struct {
	ID       int64    `json:"id"`
	Currency string   `json:"currency"`
	Amount   MoneyDTO `json:"amount"`
}

// StatementDTO matches GET /v1/profiles/{id}/balance-statements/{balanceId}/statement.json.
type StatementDTO struct {
	Transactions []StatementLineDTO `json:"transactions"`
}

// StatementLineDTO is one statement transaction.
type StatementLineDTO struct {
	Type            string         `json:"type"`
	Date            string         `json:"date"`
	Amount          MoneyDTO       `json:"amount"`
	Details         LineDetailsDTO `json:"details"`
	ReferenceNumber string         `json:"referenceNumber"`
}

// LineDetailsDTO carries the human description of a statement line.
type LineDetailsDTO struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}
