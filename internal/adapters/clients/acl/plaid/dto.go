// Package plaid implements the Anti-Corruption Layer translators for the
// Plaid API (Link tokens, token exchange and transactions sync).
package plaid

import "github.com/shopspring/decimal"

// Credentials are sent in every Plaid request body.
type Credentials struct {
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
}

// LinkUserDTO identifies the end user of a Link session.
type LinkUserDTO struct {
	ClientUserID string `json:"client_user_id"`
}

// LinkTokenRequestDTO matches POST /link/token/create.
type LinkTokenRequestDTO struct {
	Credentials
	ClientName   string      `json:"client_name"`
	User         LinkUserDTO `json:"user"`
	Products     []string    `json:"products"`
	CountryCodes []string    `json:"country_codes"`
	Language     string      `json:"language"`
}

// LinkTokenResponseDTO is the /link/token/create response.
type LinkTokenResponseDTO struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
}

// ExchangeRequestDTO matches POST /item/public_token/exchange.
type ExchangeRequestDTO struct {
	Credentials
	PublicToken string `json:"public_token"`
}

// ExchangeResponseDTO is the /item/public_token/exchange response.
type ExchangeResponseDTO struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

// SyncRequestDTO matches POST /transactions/sync.
type SyncRequestDTO struct {
	Credentials
	AccessToken string `json:"access_token"`
	Cursor      string `json:"cursor,omitempty"`
	Count       int    `json:"count,omitempty"`
}

// SyncResponseDTO is the /transactions/sync response.
type SyncResponseDTO struct {
	Added      []TransactionDTO `json:"added"`
	Modified   []TransactionDTO `json:"modified"`
	Removed    []RemovedDTO     `json:"removed"`
	NextCursor string           `json:"next_cursor"`
	HasMore    bool             `json:"has_more"`
}

// TransactionDTO is a Plaid transaction. Positive amounts are money leaving
// the account.
type TransactionDTO struct {
	TransactionID           string          `json:"transaction_id"`
	Date                    string          `json:"date"`
	Amount                  decimal.Decimal `json:"amount"`
	ISOCurrencyCode         string          `json:"iso_currency_code"`
	UnofficialCurrencyCode  string          `json:"unofficial_currency_code"`
	Name                    string          `json:"name"`
	MerchantName            string          `json:"merchant_name"`
	Pending                 bool            `json:"pending"`
	PersonalFinanceCategory *CategoryDTO    `json:"personal_finance_category"`
}

// CategoryDTO is Plaid's personal finance category.
type CategoryDTO struct {
	Primary  string `json:"primary"`
	Detailed string `json:"detailed"`
}

// RemovedDTO identifies a removed transaction.
type RemovedDTO struct {
	TransactionID string `json:"transaction_id"`
}
