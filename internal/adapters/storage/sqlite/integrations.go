package sqlite

import (
	"context"
	"database/sql"

	"github.com/jsamuelsen11/moneygoal/internal/domain/integration"
)

// UpsertConnection creates or replaces the user's connection to a provider.
// CreatedAt is preserved on replace.
func (s *Store) UpsertConnection(ctx context.Context, c *integration.Connection) (*integration.Connection, error) {
	now := s.stamp()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO integrations (user_id, provider, access_token, external_id, sync_cursor, last_synced_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, provider) DO UPDATE SET
    access_token = excluded.access_token,
    external_id = excluded.external_id,
    sync_cursor = excluded.sync_cursor,
    last_synced_at = excluded.last_synced_at,
    updated_at = excluded.updated_at`,
		c.UserID, string(c.Provider), c.AccessToken, c.ExternalID, c.Cursor, nullMillis(c.LastSyncedAt),
		toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "upsert connection")
	}
	return s.GetConnection(ctx, c.UserID, c.Provider)
}

// GetConnection loads the user's connection to provider.
func (s *Store) GetConnection(ctx context.Context, userID int64, provider integration.Provider) (*integration.Connection, error) {
	var (
		c                    integration.Connection
		prov                 string
		lastSyncedAt         sql.NullInt64
		createdAt, updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, `
SELECT user_id, provider, access_token, external_id, sync_cursor, last_synced_at, created_at, updated_at
FROM integrations
WHERE user_id = ? AND provider = ?`, userID, string(provider),
	).Scan(&c.UserID, &prov, &c.AccessToken, &c.ExternalID, &c.Cursor, &lastSyncedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, mapError(err, "get connection")
	}
	c.Provider = integration.Provider(prov)
	c.LastSyncedAt = fromNullMillis(lastSyncedAt)
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return &c, nil
}

// DeleteConnection removes the user's connection to provider.
func (s *Store) DeleteConnection(ctx context.Context, userID int64, provider integration.Provider) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM integrations WHERE user_id = ? AND provider = ?`, userID, string(provider))
	if err != nil {
		return mapError(err, "delete connection")
	}
	return checkAffected(res, "delete connection")
}
