// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/category"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/platform/telemetry"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// goalLinker computes the amount a transaction moves its goal by.
type goalLinker struct {
	goals     ports.GoalRepository
	converter ports.CurrencyConverter
}

// link sets tx.GoalAmount to the signed transaction amount expressed in the
// goal's currency, or zero when tx has no goal.
func (l goalLinker) link(ctx context.Context, tx *transaction.Transaction) error {
	tx.GoalAmount = decimal.Zero
	if tx.GoalID == nil {
		return nil
	}

	g, err := l.goals.GetGoal(ctx, tx.UserID, *tx.GoalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("goal_id", "goal not found")
		}
		return err
	}

	signed := tx.Signed()
	if g.Currency == tx.Currency {
		tx.GoalAmount = signed
		return nil
	}
	converted, err := l.converter.Convert(ctx, signed, tx.Currency, g.Currency)
	if err != nil {
		return fmt.Errorf("converting %s to goal currency %s: %w", tx.Currency, g.Currency, err)
	}
	tx.GoalAmount = converted
	return nil
}

// ingestFailure is a candidate that could not be stored. Index points into
// the slice passed to ingest.
type ingestFailure struct {
	Index int
	Err   error
}

type ingestOutcome struct {
	Imported int
	Skipped  int
	Failures []ingestFailure
}

// ingest stores the candidates that do not duplicate existing or an earlier
// candidate of the same batch. A unique external id conflict counts as a
// skip. Failures do not stop the batch.
func ingest(ctx context.Context, txs ports.TransactionRepository, linker goalLinker,
	existing []transaction.Transaction, candidates []transaction.Transaction,
) ingestOutcome {
	var out ingestOutcome
	seen := append([]transaction.Transaction(nil), existing...)

	for i := range candidates {
		tx := candidates[i]
		if err := tx.Validate(); err != nil {
			out.Failures = append(out.Failures, ingestFailure{Index: i, Err: err})
			continue
		}
		if transaction.ContainsDuplicate(seen, &tx) {
			out.Skipped++
			continue
		}
		if err := linker.link(ctx, &tx); err != nil {
			out.Failures = append(out.Failures, ingestFailure{Index: i, Err: err})
			continue
		}

		created, err := txs.CreateTransaction(ctx, &tx)
		switch {
		case errors.Is(err, domain.ErrConflict):
			out.Skipped++
		case err != nil:
			out.Failures = append(out.Failures, ingestFailure{Index: i, Err: err})
		default:
			out.Imported++
			seen = append(seen, *created)
		}
	}
	return out
}

// existingInRange loads the user's transactions dated within the span of
// candidates, the window duplicates are checked against.
func existingInRange(ctx context.Context, txs ports.TransactionRepository, userID int64,
	candidates []transaction.Transaction,
) ([]transaction.Transaction, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	from, to := candidates[0].Date, candidates[0].Date
	for _, c := range candidates[1:] {
		if c.Date.Before(from) {
			from = c.Date
		}
		if c.Date.After(to) {
			to = c.Date
		}
	}
	from, to = domain.Day(from), domain.Day(to)
	return txs.ListTransactions(ctx, userID, transaction.Filter{From: &from, To: &to})
}

// recordImport adds an ingest outcome to the import counter. Safe with nil metrics.
func recordImport(ctx context.Context, metrics *telemetry.Metrics, source transaction.Source, out ingestOutcome) {
	if metrics == nil {
		return
	}
	add := func(n int, result string) {
		if n == 0 {
			return
		}
		metrics.ImportedTransactions.Add(ctx, int64(n), metric.WithAttributes(
			telemetry.AttrSource.String(string(source)),
			telemetry.AttrResult.String(result),
		))
	}
	add(out.Imported, "imported")
	add(out.Skipped, "skipped")
	add(len(out.Failures), "failed")
}

// signedToTransaction builds a transaction from a signed bank amount:
// positive is income and negative an expense.
func signedToTransaction(userID int64, signed decimal.Decimal, currency, description string,
	date time.Time, source transaction.Source, externalID string,
) transaction.Transaction {
	typ := transaction.TypeIncome
	if signed.IsNegative() {
		typ = transaction.TypeExpense
	}
	return transaction.Transaction{
		UserID:      userID,
		Type:        typ,
		Amount:      signed.Abs(),
		Currency:    currency,
		Description: description,
		Date:        domain.Day(date),
		Source:      source,
		ExternalID:  externalID,
	}
}

// bankCandidates maps provider statement lines to transactions. Provider
// category labels are matched against the user's categories by name.
func bankCandidates(userID int64, lines []integration.BankTransaction, source transaction.Source,
	cs []category.Category,
) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(lines))
	for _, l := range lines {
		tx := signedToTransaction(userID, l.Amount, l.Currency, l.Description, l.Date, source, l.ExternalID)
		tx.CategoryID = matchCategory(cs, l.Category, tx.Type)
		out = append(out, tx)
	}
	return out
}

// syncResult converts an ingest outcome over candidates to a SyncResult.
func syncResult(out ingestOutcome, candidates []transaction.Transaction) *integration.SyncResult {
	res := &integration.SyncResult{Imported: out.Imported, Skipped: out.Skipped, Failed: len(out.Failures)}
	for _, f := range out.Failures {
		c := candidates[f.Index]
		res.Errors = append(res.Errors, fmt.Sprintf("%s %q: %v", c.Date.Format(time.DateOnly), c.Description, f.Err))
	}
	return res
}
