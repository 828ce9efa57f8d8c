package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/platform/telemetry"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// maxPlaidPages bounds a single Sync.
const maxPlaidPages = 50

var errPlaidDisabled = fmt.Errorf("plaid is not configured: %w", domain.ErrUnavailable)

// Compile-time check that PlaidService implements ports.PlaidService.
var _ ports.PlaidService = (*PlaidService)(nil)

// PlaidService implements ports.PlaidService. A nil client disables it.
type PlaidService struct {
	client       ports.PlaidClient
	integrations ports.IntegrationRepository
	txs          ports.TransactionRepository
	categories   ports.CategoryRepository
	linker       goalLinker
	metrics      *telemetry.Metrics
	logger       *slog.Logger
	now          func() time.Time
}

// NewPlaidService creates a PlaidService. Pass a nil client when Plaid
// credentials are not configured. metrics may be nil.
func NewPlaidService(client ports.PlaidClient, integrations ports.IntegrationRepository,
	txs ports.TransactionRepository, categories ports.CategoryRepository, goals ports.GoalRepository,
	converter ports.CurrencyConverter, metrics *telemetry.Metrics, logger *slog.Logger,
) *PlaidService {
	return &PlaidService{
		client:       client,
		integrations: integrations,
		txs:          txs,
		categories:   categories,
		linker:       goalLinker{goals: goals, converter: converter},
		metrics:      metrics,
		logger:       orDiscard(logger),
		now:          time.Now,
	}
}

// Enabled reports whether Plaid is configured.
func (s *PlaidService) Enabled() bool {
	return s.client != nil
}

// CreateLinkToken starts a Plaid Link session for the user.
func (s *PlaidService) CreateLinkToken(ctx context.Context, userID int64) (string, error) {
	if !s.Enabled() {
		return "", errPlaidDisabled
	}
	s.logger.InfoContext(ctx, "creating plaid link token", slog.Int64("user_id", userID))

	token, err := s.client.CreateLinkToken(ctx, strconv.FormatInt(userID, 10))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create plaid link token",
			slog.String("operation", "CreateLinkToken"),
			slog.Any("error", err),
		)
		return "", err
	}
	return token, nil
}

// ExchangePublicToken stores the access token of a completed Link flow. A
// previous item is replaced and its sync cursor reset.
func (s *PlaidService) ExchangePublicToken(ctx context.Context, userID int64, publicToken string) (*integration.Connection, error) {
	if !s.Enabled() {
		return nil, errPlaidDisabled
	}
	s.logger.InfoContext(ctx, "exchanging plaid public token", slog.Int64("user_id", userID))

	publicToken = strings.TrimSpace(publicToken)
	if publicToken == "" {
		return nil, domain.NewValidationError("public_token", domain.MsgRequired)
	}

	access, itemID, err := s.client.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to exchange plaid public token",
			slog.String("operation", "ExchangePublicToken"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.integrations.UpsertConnection(ctx, &integration.Connection{
		UserID:      userID,
		Provider:    integration.ProviderPlaid,
		AccessToken: access,
		ExternalID:  itemID,
	})
}

// Sync pulls every change since the stored cursor. Removed transactions are
// deleted, added ones ingested with duplicate detection, and the cursor is
// saved only after the changes are applied.
func (s *PlaidService) Sync(ctx context.Context, userID int64) (*integration.SyncResult, error) {
	if !s.Enabled() {
		return nil, errPlaidDisabled
	}
	s.logger.InfoContext(ctx, "syncing plaid", slog.Int64("user_id", userID))

	conn, err := s.integrations.GetConnection(ctx, userID, integration.ProviderPlaid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("plaid is not connected: %w", domain.ErrNotFound)
		}
		return nil, err
	}

	var added []integration.BankTransaction
	var removed []string
	cursor := conn.Cursor
	for page := 0; ; page++ {
		if page == maxPlaidPages {
			return nil, fmt.Errorf("plaid sync exceeded %d pages", maxPlaidPages)
		}
		p, err := s.client.SyncTransactions(ctx, conn.AccessToken, cursor)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to sync plaid transactions",
				slog.String("operation", "Sync"),
				slog.Int64("user_id", userID),
				slog.Any("error", err),
			)
			return nil, err
		}
		added = append(added, p.Added...)
		removed = append(removed, p.Removed...)
		cursor = p.NextCursor
		if !p.HasMore {
			break
		}
	}

	res := &integration.SyncResult{}
	if len(removed) > 0 {
		res.Errors = append(res.Errors, s.remove(ctx, userID, removed)...)
	}

	cs, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates := bankCandidates(userID, added, transaction.SourcePlaid, cs)
	existing, err := existingInRange(ctx, s.txs, userID, candidates)
	if err != nil {
		return nil, err
	}
	out := ingest(ctx, s.txs, s.linker, existing, candidates)
	recordImport(ctx, s.metrics, transaction.SourcePlaid, out)

	synced := s.now()
	conn.Cursor = cursor
	conn.LastSyncedAt = &synced
	if _, err := s.integrations.UpsertConnection(ctx, conn); err != nil {
		return nil, err
	}

	ingested := syncResult(out, candidates)
	res.Imported, res.Skipped, res.Failed = ingested.Imported, ingested.Skipped, ingested.Failed
	res.Errors = append(res.Errors, ingested.Errors...)
	s.logger.InfoContext(ctx, "plaid sync finished",
		slog.Int64("user_id", userID),
		slog.Int("imported", res.Imported),
		slog.Int("skipped", res.Skipped),
		slog.Int("removed", len(removed)),
	)
	return res, nil
}

// Disconnect forgets the stored item.
func (s *PlaidService) Disconnect(ctx context.Context, userID int64) error {
	if !s.Enabled() {
		return errPlaidDisabled
	}
	s.logger.InfoContext(ctx, "disconnecting plaid", slog.Int64("user_id", userID))
	return s.integrations.DeleteConnection(ctx, userID, integration.ProviderPlaid)
}

// remove deletes stored Plaid transactions whose external id was removed
// upstream. Ids that were never imported are ignored.
func (s *PlaidService) remove(ctx context.Context, userID int64, ids []string) []string {
	stored, err := s.txs.ListTransactions(ctx, userID, transaction.Filter{Source: transaction.SourcePlaid})
	if err != nil {
		return []string{fmt.Sprintf("listing plaid transactions: %v", err)}
	}
	byExternal := make(map[string]int64, len(stored))
	for _, tx := range stored {
		byExternal[tx.ExternalID] = tx.ID
	}

	var errs []string
	for _, ext := range ids {
		id, ok := byExternal[ext]
		if !ok {
			continue
		}
		if err := s.txs.DeleteTransaction(ctx, userID, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
			errs = append(errs, fmt.Sprintf("removing %s: %v", ext, err))
		}
	}
	return errs
}
