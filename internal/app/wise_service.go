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

// defaultSyncDays is the Sync window when no range is given.
const defaultSyncDays = 30

// Compile-time check that WiseService implements ports.WiseService.
var _ ports.WiseService = (*WiseService)(nil)

// WiseService implements ports.WiseService.
type WiseService struct {
	client       ports.WiseClient
	integrations ports.IntegrationRepository
	txs          ports.TransactionRepository
	categories   ports.CategoryRepository
	linker       goalLinker
	metrics      *telemetry.Metrics
	logger       *slog.Logger
	now          func() time.Time
}

// NewWiseService creates a WiseService. metrics may be nil.
func NewWiseService(client ports.WiseClient, integrations ports.IntegrationRepository,
	txs ports.TransactionRepository, categories ports.CategoryRepository, goals ports.GoalRepository,
	converter ports.CurrencyConverter, metrics *telemetry.Metrics, logger *slog.Logger,
) *WiseService {
	return &WiseService{
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

// Connect checks token against Wise and stores it with the personal
// profile, or the first profile when there is no personal one.
func (s *WiseService) Connect(ctx context.Context, userID int64, token string) (*integration.Connection, error) {
	s.logger.InfoContext(ctx, "connecting wise", slog.Int64("user_id", userID))

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.NewValidationError("token", domain.MsgRequired)
	}

	profiles, err := s.client.ListProfiles(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.NewValidationError("token", "rejected by Wise")
		}
		s.logger.ErrorContext(ctx, "failed to list wise profiles",
			slog.String("operation", "Connect"),
			slog.Any("error", err),
		)
		return nil, err
	}
	profile, ok := pickProfile(profiles)
	if !ok {
		return nil, domain.NewValidationError("token", "no Wise profile available")
	}

	conn, err := s.integrations.UpsertConnection(ctx, &integration.Connection{
		UserID:      userID,
		Provider:    integration.ProviderWise,
		AccessToken: token,
		ExternalID:  strconv.FormatInt(profile.ID, 10),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store wise connection",
			slog.String("operation", "Connect"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return conn, nil
}

// Disconnect forgets the stored token.
func (s *WiseService) Disconnect(ctx context.Context, userID int64) error {
	s.logger.InfoContext(ctx, "disconnecting wise", slog.Int64("user_id", userID))
	return s.integrations.DeleteConnection(ctx, userID, integration.ProviderWise)
}

// Balances returns the current balances of the connected profile.
func (s *WiseService) Balances(ctx context.Context, userID int64) ([]integration.Balance, error) {
	conn, profileID, err := s.connection(ctx, userID)
	if err != nil {
		return nil, err
	}
	balances, err := s.client.ListBalances(ctx, conn.AccessToken, profileID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list wise balances",
			slog.String("operation", "Balances"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return balances, nil
}

// Sync imports the statement lines of every balance dated within [from, to].
// Zero bounds default to the last 30 days. A balance whose statement cannot
// be fetched is reported in the result and does not stop the others.
func (s *WiseService) Sync(ctx context.Context, userID int64, from, to time.Time) (*integration.SyncResult, error) {
	now := s.now()
	if to.IsZero() {
		to = now
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultSyncDays)
	}
	from, to = domain.Day(from), domain.Day(to)
	if to.Before(from) {
		return nil, domain.NewValidationError("to", "must not be before from")
	}
	s.logger.InfoContext(ctx, "syncing wise",
		slog.Int64("user_id", userID),
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
	)

	conn, profileID, err := s.connection(ctx, userID)
	if err != nil {
		return nil, err
	}
	balances, err := s.client.ListBalances(ctx, conn.AccessToken, profileID)
	if err != nil {
		return nil, err
	}

	var lines []integration.BankTransaction
	var fetchErrs []string
	for _, b := range balances {
		stmt, err := s.client.GetStatement(ctx, conn.AccessToken, profileID, b, from, to)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch wise statement",
				slog.String("operation", "Sync"),
				slog.String("currency", b.Currency),
				slog.Any("error", err),
			)
			fetchErrs = append(fetchErrs, fmt.Sprintf("%s balance: %v", b.Currency, err))
			continue
		}
		lines = append(lines, stmt...)
	}

	cs, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates := bankCandidates(userID, lines, transaction.SourceWise, cs)

	existing, err := s.txs.ListTransactions(ctx, userID, transaction.Filter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	out := ingest(ctx, s.txs, s.linker, existing, candidates)
	recordImport(ctx, s.metrics, transaction.SourceWise, out)

	synced := now
	conn.LastSyncedAt = &synced
	if _, err := s.integrations.UpsertConnection(ctx, conn); err != nil {
		return nil, err
	}

	res := syncResult(out, candidates)
	res.Errors = append(fetchErrs, res.Errors...)
	s.logger.InfoContext(ctx, "wise sync finished",
		slog.Int64("user_id", userID),
		slog.Int("imported", res.Imported),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *WiseService) connection(ctx context.Context, userID int64) (*integration.Connection, int64, error) {
	conn, err := s.integrations.GetConnection(ctx, userID, integration.ProviderWise)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, fmt.Errorf("wise is not connected: %w", domain.ErrNotFound)
		}
		return nil, 0, err
	}
	profileID, err := strconv.ParseInt(conn.ExternalID, 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("stored wise profile id %q: %w", conn.ExternalID, err)
	}
	return conn, profileID, nil
}

func pickProfile(profiles []integration.Profile) (integration.Profile, bool) {
	for _, p := range profiles {
		if p.Type == "personal" {
			return p, true
		}
	}
	if len(profiles) > 0 {
		return profiles[0], true
	}
	return integration.Profile{}, false
}
