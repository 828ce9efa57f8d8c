package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/csvimport"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/category"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/platform/telemetry"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// DefaultPreviewRows caps Preview output when ImportOptions.PreviewRows is unset.
const DefaultPreviewRows = 20

// Compile-time check that ImportService implements ports.ImportService.
var _ ports.ImportService = (*ImportService)(nil)

// ImportService implements ports.ImportService.
type ImportService struct {
	users      ports.UserRepository
	txs        ports.TransactionRepository
	categories ports.CategoryRepository
	linker     goalLinker
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// NewImportService creates an ImportService. metrics may be nil.
func NewImportService(users ports.UserRepository, txs ports.TransactionRepository,
	categories ports.CategoryRepository, goals ports.GoalRepository, converter ports.CurrencyConverter,
	metrics *telemetry.Metrics, logger *slog.Logger,
) *ImportService {
	return &ImportService{
		users:      users,
		txs:        txs,
		categories: categories,
		linker:     goalLinker{goals: goals, converter: converter},
		metrics:    metrics,
		logger:     orDiscard(logger),
	}
}

// Preview parses r and flags rows that duplicate stored transactions or an
// earlier row of the same file. Nothing is written.
func (s *ImportService) Preview(ctx context.Context, userID int64, r io.Reader, opts ports.ImportOptions) (*ports.ImportPreview, error) {
	s.logger.InfoContext(ctx, "previewing csv import", slog.Int64("user_id", userID))

	parsed, candidates, err := s.parse(ctx, userID, r, opts, "")
	if err != nil {
		return nil, err
	}
	existing, err := existingInRange(ctx, s.txs, userID, candidates)
	if err != nil {
		return nil, err
	}

	seen := append([]transaction.Transaction(nil), existing...)
	for i := range candidates {
		if transaction.ContainsDuplicate(seen, &candidates[i]) {
			parsed.Rows[i].Duplicate = true
			continue
		}
		seen = append(seen, candidates[i])
	}

	limit := opts.PreviewRows
	if limit <= 0 {
		limit = DefaultPreviewRows
	}
	return &ports.ImportPreview{
		Columns: parsed.Columns,
		Rows:    parsed.Rows[:min(limit, len(parsed.Rows))],
		Total:   len(parsed.Rows),
		Errors:  parsed.Errors,
	}, nil
}

// Import parses r and stores every row that is not a duplicate. Each row is
// tagged with the batch id and its line number.
func (s *ImportService) Import(ctx context.Context, userID int64, r io.Reader, opts ports.ImportOptions) (*ports.ImportResult, error) {
	batchID := uuid.NewString()
	s.logger.InfoContext(ctx, "importing csv",
		slog.Int64("user_id", userID),
		slog.String("batch_id", batchID),
	)

	parsed, candidates, err := s.parse(ctx, userID, r, opts, batchID)
	if err != nil {
		return nil, err
	}
	existing, err := existingInRange(ctx, s.txs, userID, candidates)
	if err != nil {
		return nil, err
	}

	out := ingest(ctx, s.txs, s.linker, existing, candidates)
	recordImport(ctx, s.metrics, transaction.SourceCSV, out)

	res := &ports.ImportResult{
		BatchID:  batchID,
		Imported: out.Imported,
		Skipped:  out.Skipped,
		Failed:   len(out.Failures) + len(parsed.Errors),
		Errors:   parsed.Errors,
	}
	for _, f := range out.Failures {
		res.Errors = append(res.Errors, ports.ImportRowError{Line: parsed.Rows[f.Index].Line, Message: f.Err.Error()})
	}

	s.logger.InfoContext(ctx, "csv import finished",
		slog.String("batch_id", batchID),
		slog.Int("imported", res.Imported),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

// parse reads the file and maps every row to a candidate transaction.
// candidates[i] corresponds to Result.Rows[i].
func (s *ImportService) parse(ctx context.Context, userID int64, r io.Reader, opts ports.ImportOptions,
	batchID string,
) (*csvimport.Result, []transaction.Transaction, error) {
	currency := opts.Currency
	if currency == "" {
		u, err := s.users.GetUser(ctx, userID)
		if err != nil {
			return nil, nil, err
		}
		currency = u.BaseCurrency
	}
	currency, err := domain.NormalizeCurrency(currency)
	if err != nil {
		return nil, nil, domain.NewValidationError("currency", "must be a 3-letter ISO 4217 code")
	}

	parsed, err := csvimport.Parse(r, currency)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to parse csv",
			slog.String("operation", "parse"),
			slog.Any("error", err),
		)
		return nil, nil, err
	}

	cs, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	candidates := make([]transaction.Transaction, len(parsed.Rows))
	for i, row := range parsed.Rows {
		candidates[i] = rowToTransaction(userID, row, opts.GoalID, cs, batchID)
	}
	return parsed, candidates, nil
}

func rowToTransaction(userID int64, row ports.ImportRow, goalID *int64, cs []category.Category,
	batchID string,
) transaction.Transaction {
	tx := transaction.Transaction{
		UserID:      userID,
		GoalID:      goalID,
		CategoryID:  matchCategory(cs, row.Category, row.Type),
		Type:        row.Type,
		Amount:      row.Amount,
		Currency:    row.Currency,
		Description: row.Description,
		Date:        row.Date,
		Source:      transaction.SourceCSV,
	}
	if batchID != "" {
		tx.ExternalID = fmt.Sprintf("%s:%d", batchID, row.Line)
	}
	return tx
}
