// Package sqlite implements the persistence port on top of SQLite using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/storage/sqlite/migrations"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/platform/database"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

const dateLayout = "2006-01-02"

// Compile-time interface check.
var _ ports.Store = (*Store)(nil)

// Store provides SQLite-backed persistence for every MoneyGoal aggregate.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open opens the database at path and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := database.Open(ctx, path, migrations.FS)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// New wraps an already migrated database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite db: %w", err)
	}
	return nil
}

// stamp returns the current time at the millisecond precision stored on disk.
func (s *Store) stamp() time.Time {
	return fromMillis(toMillis(s.now()))
}

// withTx runs fn inside a transaction, rolling back when fn fails.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", op, err)
	}
	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("%w: rollback %s: %v", err, op, rollbackErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", op, err)
	}
	return nil
}

// mapError translates driver errors into domain sentinels.
func mapError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: referenced record: %w", op, domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// checkAffected reports ErrNotFound when a scoped write matched no row.
func checkAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func nullMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return toMillis(*t)
}

func fromNullMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromMillis(v.Int64)
	return &t
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored date %q: %w", v, err)
	}
	return t, nil
}

func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatDate(*t)
}

func fromNullDate(v sql.NullString) (*time.Time, error) {
	if !v.Valid {
		return nil, nil
	}
	t, err := parseDate(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func fromNullID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}

func nullString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func parseDecimal(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse stored amount %q: %w", v, err)
	}
	return d, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ensureOwned verifies that id exists in table and belongs to userID.
// table is always a package constant.
func ensureOwned(ctx context.Context, q queryer, table string, userID, id int64) error {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ? AND user_id = ?", id, userID).Scan(&one)
	if err != nil {
		return mapError(err, "lookup "+table)
	}
	return nil
}

// ensureRefs verifies optional goal and category references for userID.
func ensureRefs(ctx context.Context, q queryer, userID int64, goalID, categoryID *int64) error {
	if goalID != nil {
		if err := ensureOwned(ctx, q, "goals", userID, *goalID); err != nil {
			return err
		}
	}
	if categoryID != nil {
		if err := ensureOwned(ctx, q, "categories", userID, *categoryID); err != nil {
			return err
		}
	}
	return nil
}
