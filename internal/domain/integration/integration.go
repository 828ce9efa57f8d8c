// Package integration holds stored credentials for bank data providers.
package integration

import (
	"time"

	"github.com/shopspring/decimal"
)

// Provider names a bank data integration.
type Provider string

const (
	ProviderWise  Provider = "wise"
	ProviderPlaid Provider = "plaid"
)

// IsValid returns true if the provider is one of the defined constants.
func (p Provider) IsValid() bool {
	return p == ProviderWise || p == ProviderPlaid
}

// Connection links a user to a provider. ExternalID is the Wise profile id
// or the Plaid item id; Cursor is the Plaid transactions sync cursor.
type Connection struct {
	UserID       int64
	Provider     Provider
	AccessToken  string
	ExternalID   string
	Cursor       string
	LastSyncedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SyncResult summarizes a bank sync.
type SyncResult struct {
	Imported int
	Skipped  int
	Failed   int
	Errors   []string
}

// Profile is a Wise account profile.
type Profile struct {
	ID   int64
	Type string // personal or business
	Name string
}

// Balance is one currency balance held with a provider.
type Balance struct {
	ID       int64
	Currency string
	Amount   decimal.Decimal
}

// BankTransaction is a provider-neutral statement line. Amount is signed:
// positive for money in and negative for money out.
type BankTransaction struct {
	ExternalID  string
	Date        time.Time
	Amount      decimal.Decimal
	Currency    string
	Description string
	Category    string
}

// PlaidSyncPage is one page of a Plaid transactions sync.
type PlaidSyncPage struct {
	Added      []BankTransaction
	Removed    []string
	NextCursor string
	HasMore    bool
}
