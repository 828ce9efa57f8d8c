package plaid

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
)

// ToSyncPage converts a sync response. Plaid reports outflows as positive
// amounts, so signs are flipped to the money-in-is-positive convention.
// Pending and undated transactions are skipped; modified transactions are
// treated as removals followed by additions.
func ToSyncPage(dto SyncResponseDTO) *integration.PlaidSyncPage {
	page := &integration.PlaidSyncPage{
		Added:      make([]integration.BankTransaction, 0, len(dto.Added)),
		Removed:    make([]string, 0, len(dto.Removed)),
		NextCursor: dto.NextCursor,
		HasMore:    dto.HasMore,
	}
	for _, r := range dto.Removed {
		page.Removed = append(page.Removed, r.TransactionID)
	}
	for _, m := range dto.Modified {
		page.Removed = append(page.Removed, m.TransactionID)
	}
	for _, list := range [][]TransactionDTO{dto.Added, dto.Modified} {
		for _, t := range list {
			if tx, ok := toBankTransaction(t); ok {
				page.Added = append(page.Added, tx)
			}
		}
	}
	return page
}

func toBankTransaction(t TransactionDTO) (integration.BankTransaction, bool) {
	if t.Pending {
		return integration.BankTransaction{}, false
	}
	date, err := time.Parse(time.DateOnly, t.Date)
	if err != nil {
		return integration.BankTransaction{}, false
	}
	currency := t.ISOCurrencyCode
	if currency == "" {
		currency = t.UnofficialCurrencyCode
	}
	description := strings.TrimSpace(t.MerchantName)
	if description == "" {
		description = strings.TrimSpace(t.Name)
	}
	var category string
	if t.PersonalFinanceCategory != nil {
		category = t.PersonalFinanceCategory.Primary
	}
	return integration.BankTransaction{
		ExternalID:  t.TransactionID,
		Date:        date,
		Amount:      t.Amount.Neg(),
		Currency:    currency,
		Description: description,
		Category:    category,
	}, true
}
