package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/recurring"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

const recurringColumns = `id, user_id, goal_id, category_id, name, amount, currency, frequency, next_date, anchor_day, active, last_run_at, created_at, updated_at`

// ListRecurring returns the user's recurring expenses ordered by next run.
func (s *Store) ListRecurring(ctx context.Context, userID int64) ([]recurring.Expense, error) {
	return s.queryRecurring(ctx, "list recurring", `
SELECT `+recurringColumns+` FROM recurring_expenses
WHERE user_id = ?
ORDER BY next_date, id`, userID)
}

// ListDueRecurring returns active expenses of every user due on or before today.
func (s *Store) ListDueRecurring(ctx context.Context, today time.Time) ([]recurring.Expense, error) {
	return s.queryRecurring(ctx, "list due recurring", `
SELECT `+recurringColumns+` FROM recurring_expenses
WHERE active = 1 AND next_date <= ?
ORDER BY user_id, next_date, id`, formatDate(today))
}

// GetRecurring loads one recurring expense owned by userID.
func (s *Store) GetRecurring(ctx context.Context, userID, id int64) (*recurring.Expense, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recurringColumns+` FROM recurring_expenses WHERE id = ? AND user_id = ?`, id, userID)
	e, err := scanRecurring(row.Scan)
	if err != nil {
		return nil, mapError(err, "get recurring")
	}
	return e, nil
}

// CreateRecurring inserts a recurring expense template.
func (s *Store) CreateRecurring(ctx context.Context, e *recurring.Expense) (*recurring.Expense, error) {
	if err := ensureRefs(ctx, s.db, e.UserID, e.GoalID, e.CategoryID); err != nil {
		return nil, err
	}
	now := s.stamp()
	out := *e
	out.NextDate = domain.Day(e.NextDate)
	out.CreatedAt, out.UpdatedAt = now, now

	res, err := s.db.ExecContext(ctx, `
INSERT INTO recurring_expenses (user_id, goal_id, category_id, name, amount, currency, frequency, next_date, anchor_day, active, last_run_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		out.UserID, nullID(out.GoalID), nullID(out.CategoryID), out.Name, out.Amount.String(), out.Currency,
		string(out.Frequency), formatDate(out.NextDate), out.AnchorDay, boolToInt(out.Active), nullDate(out.LastRunAt),
		toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "create recurring")
	}
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, mapError(err, "create recurring")
	}
	return &out, nil
}

// UpdateRecurring saves every template field.
func (s *Store) UpdateRecurring(ctx context.Context, e *recurring.Expense) (*recurring.Expense, error) {
	if err := ensureRefs(ctx, s.db, e.UserID, e.GoalID, e.CategoryID); err != nil {
		return nil, err
	}
	if err := updateRecurring(ctx, s.db, e, s.stamp()); err != nil {
		return nil, err
	}
	return s.GetRecurring(ctx, e.UserID, e.ID)
}

// DeleteRecurring removes a template. Transactions it created are kept.
func (s *Store) DeleteRecurring(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recurring_expenses WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return mapError(err, "delete recurring")
	}
	return checkAffected(res, "delete recurring")
}

// RecordRecurringRun saves the advanced expense and, when t is non-nil,
// inserts the materialized transaction in the same database transaction.
func (s *Store) RecordRecurringRun(ctx context.Context, e *recurring.Expense, t *transaction.Transaction) (*transaction.Transaction, error) {
	var created *transaction.Transaction
	err := s.withTx(ctx, "record recurring run", func(tx *sql.Tx) error {
		if err := updateRecurring(ctx, tx, e, s.stamp()); err != nil {
			return err
		}
		if t == nil {
			return nil
		}
		var err error
		created, err = s.insertTransaction(ctx, tx, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func updateRecurring(ctx context.Context, q queryer, e *recurring.Expense, now time.Time) error {
	res, err := q.ExecContext(ctx, `
UPDATE recurring_expenses
SET goal_id = ?, category_id = ?, name = ?, amount = ?, currency = ?, frequency = ?,
    next_date = ?, anchor_day = ?, active = ?, last_run_at = ?, updated_at = ?
WHERE id = ? AND user_id = ?`,
		nullID(e.GoalID), nullID(e.CategoryID), e.Name, e.Amount.String(), e.Currency, string(e.Frequency),
		formatDate(e.NextDate), e.AnchorDay, boolToInt(e.Active), nullDate(e.LastRunAt), toMillis(now),
		e.ID, e.UserID,
	)
	if err != nil {
		return mapError(err, "update recurring")
	}
	return checkAffected(res, "update recurring")
}

func (s *Store) queryRecurring(ctx context.Context, op, query string, args ...any) ([]recurring.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, op)
	}
	defer rows.Close()

	expenses := make([]recurring.Expense, 0)
	for rows.Next() {
		e, err := scanRecurring(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan recurring: %w", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, op)
	}
	return expenses, nil
}

func scanRecurring(scan func(dest ...any) error) (*recurring.Expense, error) {
	var (
		e                    recurring.Expense
		goalID, categoryID   sql.NullInt64
		amount, frequency    string
		nextDate             string
		active               int
		lastRunAt            sql.NullString
		createdAt, updatedAt int64
	)
	if err := scan(&e.ID, &e.UserID, &goalID, &categoryID, &e.Name, &amount, &e.Currency,
		&frequency, &nextDate, &e.AnchorDay, &active, &lastRunAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if e.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	if e.NextDate, err = parseDate(nextDate); err != nil {
		return nil, err
	}
	if e.LastRunAt, err = fromNullDate(lastRunAt); err != nil {
		return nil, err
	}
	e.GoalID = fromNullID(goalID)
	e.CategoryID = fromNullID(categoryID)
	e.Frequency = domain.Frequency(frequency)
	e.Active = active != 0
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return &e, nil
}
