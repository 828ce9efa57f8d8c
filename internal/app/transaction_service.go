package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Compile-time check that TransactionService implements ports.TransactionService.
var _ ports.TransactionService = (*TransactionService)(nil)

// TransactionService implements ports.TransactionService. Writes that link a
// goal move it by the signed amount converted to the goal's currency.
type TransactionService struct {
	txs    ports.TransactionRepository
	linker goalLinker
	logger *slog.Logger
}

// NewTransactionService creates a TransactionService.
func NewTransactionService(txs ports.TransactionRepository, goals ports.GoalRepository,
	converter ports.CurrencyConverter, logger *slog.Logger,
) *TransactionService {
	return &TransactionService{
		txs:    txs,
		linker: goalLinker{goals: goals, converter: converter},
		logger: orDiscard(logger),
	}
}

// ListTransactions returns the user's transactions matching filter.
func (s *TransactionService) ListTransactions(ctx context.Context, userID int64, filter transaction.Filter) ([]transaction.Transaction, error) {
	s.logger.InfoContext(ctx, "listing transactions", slog.Int64("user_id", userID))

	txs, err := s.txs.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list transactions",
			slog.String("operation", "ListTransactions"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return txs, nil
}

// GetTransaction returns one transaction.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id int64) (*transaction.Transaction, error) {
	s.logger.InfoContext(ctx, "fetching transaction", slog.Int64("id", id))

	tx, err := s.txs.GetTransaction(ctx, userID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch transaction",
			slog.String("operation", "GetTransaction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tx, nil
}

// CreateTransaction validates tx, links it to its goal and stores it. An
// empty Source means manual entry.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error) {
	s.logger.InfoContext(ctx, "creating transaction",
		slog.String("type", tx.Type.String()),
		slog.String("source", tx.Source.String()),
	)

	if tx.Source == "" {
		tx.Source = transaction.SourceManual
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.linker.link(ctx, tx); err != nil {
		return nil, err
	}

	created, err := s.txs.CreateTransaction(ctx, tx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create transaction",
			slog.String("operation", "CreateTransaction"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateTransaction replaces the editable fields of a transaction. Source
// and ExternalID keep their stored values.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id int64, tx *transaction.Transaction) (*transaction.Transaction, error) {
	s.logger.InfoContext(ctx, "updating transaction", slog.Int64("id", id))

	stored, err := s.txs.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tx.ID = id
	tx.UserID = userID
	tx.Source = stored.Source
	tx.ExternalID = stored.ExternalID
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.linker.link(ctx, tx); err != nil {
		return nil, err
	}

	updated, err := s.txs.UpdateTransaction(ctx, tx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update transaction",
			slog.String("operation", "UpdateTransaction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction removes a transaction and reverses its goal effect.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id int64) error {
	s.logger.InfoContext(ctx, "deleting transaction", slog.Int64("id", id))

	if err := s.txs.DeleteTransaction(ctx, userID, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete transaction",
			slog.String("operation", "DeleteTransaction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
