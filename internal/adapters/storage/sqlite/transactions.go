package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

const transactionColumns = `id, user_id, goal_id, category_id, type, amount, currency, goal_amount, description, date, source, external_id, created_at`

// ListTransactions returns the user's transactions matching filter, most
// recent date first.
func (s *Store) ListTransactions(ctx context.Context, userID int64, filter transaction.Filter) ([]transaction.Transaction, error) {
	where := []string{"user_id = ?"}
	args := []any{userID}
	if filter.GoalID != nil {
		where = append(where, "goal_id = ?")
		args = append(args, *filter.GoalID)
	}
	if filter.CategoryID != nil {
		where = append(where, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Source != "" {
		where = append(where, "source = ?")
		args = append(args, string(filter.Source))
	}
	if filter.From != nil {
		where = append(where, "date >= ?")
		args = append(args, formatDate(*filter.From))
	}
	if filter.To != nil {
		where = append(where, "date <= ?")
		args = append(args, formatDate(*filter.To))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY date DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list transactions")
	}
	defer rows.Close()

	txs := make([]transaction.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list transactions")
	}
	return txs, nil
}

// GetTransaction loads one transaction owned by userID.
func (s *Store) GetTransaction(ctx context.Context, userID, id int64) (*transaction.Transaction, error) {
	return getTransaction(ctx, s.db, userID, id)
}

// CreateTransaction inserts t and applies its GoalAmount to the linked goal.
func (s *Store) CreateTransaction(ctx context.Context, t *transaction.Transaction) (*transaction.Transaction, error) {
	var out *transaction.Transaction
	err := s.withTx(ctx, "create transaction", func(tx *sql.Tx) error {
		var err error
		out, err = s.insertTransaction(ctx, tx, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTransactions inserts txs atomically. Any failure leaves nothing written.
func (s *Store) CreateTransactions(ctx context.Context, txs []transaction.Transaction) ([]transaction.Transaction, error) {
	out := make([]transaction.Transaction, 0, len(txs))
	err := s.withTx(ctx, "create transactions", func(tx *sql.Tx) error {
		for i := range txs {
			created, err := s.insertTransaction(ctx, tx, &txs[i])
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			out = append(out, *created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateTransaction reverses the stored goal effect, saves t, and applies
// the new goal effect. Source and ExternalID are immutable.
func (s *Store) UpdateTransaction(ctx context.Context, t *transaction.Transaction) (*transaction.Transaction, error) {
	var out *transaction.Transaction
	err := s.withTx(ctx, "update transaction", func(tx *sql.Tx) error {
		stored, err := getTransaction(ctx, tx, t.UserID, t.ID)
		if err != nil {
			return err
		}
		if err := ensureRefs(ctx, tx, t.UserID, t.GoalID, t.CategoryID); err != nil {
			return err
		}
		if stored.GoalID != nil {
			if err := s.applyToGoal(ctx, tx, stored.UserID, *stored.GoalID, stored.GoalAmount.Neg()); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `
UPDATE transactions
SET goal_id = ?, category_id = ?, type = ?, amount = ?, currency = ?, goal_amount = ?, description = ?, date = ?
WHERE id = ? AND user_id = ?`,
			nullID(t.GoalID), nullID(t.CategoryID), string(t.Type), t.Amount.String(), t.Currency,
			t.GoalAmount.String(), t.Description, formatDate(t.Date), t.ID, t.UserID,
		)
		if err != nil {
			return mapError(err, "update transaction")
		}
		if t.GoalID != nil {
			if err := s.applyToGoal(ctx, tx, t.UserID, *t.GoalID, t.GoalAmount); err != nil {
				return err
			}
		}

		updated := *t
		updated.Source = stored.Source
		updated.ExternalID = stored.ExternalID
		updated.Date = domain.Day(t.Date)
		updated.CreatedAt = stored.CreatedAt
		out = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTransaction removes the transaction and reverses its goal effect.
func (s *Store) DeleteTransaction(ctx context.Context, userID, id int64) error {
	return s.withTx(ctx, "delete transaction", func(tx *sql.Tx) error {
		stored, err := getTransaction(ctx, tx, userID, id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = ? AND user_id = ?`, id, userID); err != nil {
			return mapError(err, "delete transaction")
		}
		if stored.GoalID == nil {
			return nil
		}
		return s.applyToGoal(ctx, tx, userID, *stored.GoalID, stored.GoalAmount.Neg())
	})
}

// ExistsOnDay reports whether the user has a transaction with exactly this
// description dated day.
func (s *Store) ExistsOnDay(ctx context.Context, userID int64, description string, day time.Time) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
SELECT EXISTS (SELECT 1 FROM transactions WHERE user_id = ? AND description = ? AND date = ?)`,
		userID, description, formatDate(day),
	).Scan(&exists)
	if err != nil {
		return false, mapError(err, "check transaction on day")
	}
	return exists, nil
}

func (s *Store) insertTransaction(ctx context.Context, q queryer, t *transaction.Transaction) (*transaction.Transaction, error) {
	if err := ensureRefs(ctx, q, t.UserID, t.GoalID, t.CategoryID); err != nil {
		return nil, err
	}
	out := *t
	out.Date = domain.Day(t.Date)
	out.CreatedAt = s.stamp()
	if out.Source == "" {
		out.Source = transaction.SourceManual
	}

	res, err := q.ExecContext(ctx, `
INSERT INTO transactions (user_id, goal_id, category_id, type, amount, currency, goal_amount, description, date, source, external_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		out.UserID, nullID(out.GoalID), nullID(out.CategoryID), string(out.Type), out.Amount.String(),
		out.Currency, out.GoalAmount.String(), out.Description, formatDate(out.Date),
		string(out.Source), out.ExternalID, toMillis(out.CreatedAt),
	)
	if err != nil {
		return nil, mapError(err, "insert transaction")
	}
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, mapError(err, "insert transaction")
	}
	if out.GoalID != nil {
		if err := s.applyToGoal(ctx, q, out.UserID, *out.GoalID, out.GoalAmount); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func getTransaction(ctx context.Context, q queryer, userID, id int64) (*transaction.Transaction, error) {
	row := q.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	t, err := scanTransaction(row.Scan)
	if err != nil {
		return nil, mapError(err, "get transaction")
	}
	return t, nil
}

func scanTransaction(scan func(dest ...any) error) (*transaction.Transaction, error) {
	var (
		t                        transaction.Transaction
		goalID, categoryID       sql.NullInt64
		typ, source              string
		amount, goalAmount, date string
		createdAt                int64
	)
	if err := scan(&t.ID, &t.UserID, &goalID, &categoryID, &typ, &amount, &t.Currency,
		&goalAmount, &t.Description, &date, &source, &t.ExternalID, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if t.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	if t.GoalAmount, err = parseDecimal(goalAmount); err != nil {
		return nil, err
	}
	if t.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	t.GoalID = fromNullID(goalID)
	t.CategoryID = fromNullID(categoryID)
	t.Type = transaction.Type(typ)
	t.Source = transaction.Source(source)
	t.CreatedAt = fromMillis(createdAt)
	return &t, nil
}
