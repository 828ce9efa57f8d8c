package wise

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
)

// Statement line types.
const (
	LineCredit = "CREDIT"
	LineDebit  = "DEBIT"
)

// ToDomainProfiles converts the profile list. Wise reports types in upper case.
func ToDomainProfiles(dtos []ProfileDTO) []integration.Profile {
	profiles := make([]integration.Profile, len(dtos))
	for i, dto := range dtos {
		profiles[i] = integration.Profile{
			ID:   dto.ID,
			Type: strings.ToLower(dto.Type),
			Name: dto.FullName,
		}
	}
	return profiles
}

// ToDomainBalances converts the balance list.
func ToDomainBalances(dtos []BalanceDTO) []integration.Balance {
	balances := make([]integration.Balance, len(dtos))
	for i, dto := range dtos {
		currency := dto.Currency
		if currency == "" {
			currency = dto.Amount.Currency
		}
		balances[i] = integration.Balance{
			ID:       dto.ID,
			Currency: currency,
			Amount:   dto.Amount.Value,
		}
	}
	return balances
}

// ToBankTransactions converts statement lines. CREDIT lines are money in
// and DEBIT lines money out regardless of the sign Wise puts on the value.
// Lines with an unparseable date are dropped.
func ToBankTransactions(dto StatementDTO) []integration.BankTransaction {
	out := make([]integration.BankTransaction, 0, len(dto.Transactions))
	for _, line := range dto.Transactions {
		date, err := time.Parse(time.RFC3339, line.Date)
		if err != nil {
			continue
		}
		amount := line.Amount.Value.Abs()
		if strings.EqualFold(line.Type, LineDebit) {
			amount = amount.Neg()
		}
		description := strings.TrimSpace(line.Details.Description)
		if description == "" {
			description = strings.TrimSpace(line.Details.Type)
		}
		out = append(out, integration.BankTransaction{
			ExternalID:  line.ReferenceNumber,
			Date:        domain.Day(date),
			Amount:      amount,
			Currency:    line.Amount.Currency,
			Description: description,
			Category:    line.Details.Type,
		})
	}
	return out
}
