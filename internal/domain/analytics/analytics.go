// Package analytics aggregates transactions already converted to a single
// reporting currency.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

// UncategorizedName labels spending without a category.
const UncategorizedName = "Uncategorized"

// Summary totals income and expenses over a range.
type Summary struct {
	Currency    string
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Net         decimal.Decimal
	SavingsRate float64
	Count       int
}

// CategorySpend is one slice of the spending breakdown.
type CategorySpend struct {
	CategoryID *int64
	Name       string
	Amount     decimal.Decimal
	Percent    float64
}

// MonthTotal is one point of the monthly trend.
type MonthTotal struct {
	Month   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Summarize totals txs, which must all be in currency.
func Summarize(txs []transaction.Transaction, currency string) Summary {
	s := Summary{Currency: currency, Income: decimal.Zero, Expense: decimal.Zero, Count: len(txs)}
	for i := range txs {
		if txs[i].Type == transaction.TypeIncome {
			s.Income = s.Income.Add(txs[i].Amount)
		} else {
			s.Expense = s.Expense.Add(txs[i].Amount)
		}
	}
	s.Income = s.Income.Round(2)
	s.Expense = s.Expense.Round(2)
	s.Net = s.Income.Sub(s.Expense)
	s.SavingsRate = SavingsRate(s.Income, s.Expense)
	return s
}

// SavingsRate is the share of income not spent, in percent with one
// decimal. It is zero when there is no income and may be negative.
func SavingsRate(income, expense decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	return income.Sub(expense).Mul(decimal.NewFromInt(100)).Div(income).Round(1).InexactFloat64()
}

// SpendingByCategory groups expenses by category, largest first. names maps
// category ids to display names.
func SpendingByCategory(txs []transaction.Transaction, names map[int64]string) []CategorySpend {
	type bucket struct {
		id     *int64
		amount decimal.Decimal
	}
	buckets := make(map[int64]*bucket)
	total := decimal.Zero

	for i := range txs {
		tx := &txs[i]
		if tx.Type != transaction.TypeExpense {
			continue
		}
		var key int64
		if tx.CategoryID != nil {
			key = *tx.CategoryID
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{id: tx.CategoryID, amount: decimal.Zero}
			buckets[key] = b
		}
		b.amount = b.amount.Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	out := make([]CategorySpend, 0, len(buckets))
	for key, b := range buckets {
		name := UncategorizedName
		if b.id != nil {
			if n, ok := names[key]; ok {
				name = n
			}
		}
		var pct float64
		if total.IsPositive() {
			pct = b.amount.Mul(decimal.NewFromInt(100)).Div(total).Round(1).InexactFloat64()
		}
		out = append(out, CategorySpend{CategoryID: b.id, Name: name, Amount: b.amount.Round(2), Percent: pct})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// MonthlyTrend returns months calendar months ending with the month of now,
// oldest first. Months without transactions are present with zero totals.
func MonthlyTrend(txs []transaction.Transaction, now time.Time, months int) []MonthTotal {
	if months < 1 {
		return nil
	}

	first := domain.AddMonths(domain.MonthStart(now), -(months - 1))
	out := make([]MonthTotal, months)
	index := make(map[string]int, months)
	for i := range out {
		key := domain.AddMonths(first, i).Format("2006-01")
		out[i] = MonthTotal{Month: key, Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}
		index[key] = i
	}

	for i := range txs {
		idx, ok := index[txs[i].Date.Format("2006-01")]
		if !ok {
			continue
		}
		if txs[i].Type == transaction.TypeIncome {
			out[idx].Income = out[idx].Income.Add(txs[i].Amount)
		} else {
			out[idx].Expense = out[idx].Expense.Add(txs[i].Amount)
		}
	}
	for i := range out {
		out[i].Income = out[i].Income.Round(2)
		out[i].Expense = out[i].Expense.Round(2)
		out[i].Net = out[i].Income.Sub(out[i].Expense)
	}
	return out
}
