package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/bill"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

const billColumns = `id, user_id, name, amount, currency, due_date, frequency, anchor_day, category_id, is_paid, last_paid_at, notes, created_at, updated_at`

// ListBills returns the user's bills ordered by due date.
func (s *Store) ListBills(ctx context.Context, userID int64) ([]bill.Bill, error) {
	return s.queryBills(ctx, "list bills", `
SELECT `+billColumns+` FROM bills
WHERE user_id = ?
ORDER BY due_date, id`, userID)
}

// ListUnpaidBillsDueBy returns unpaid bills due on or before until, soonest first.
// Overdue bills are included.
func (s *Store) ListUnpaidBillsDueBy(ctx context.Context, userID int64, until time.Time) ([]bill.Bill, error) {
	return s.queryBills(ctx, "list upcoming bills", `
SELECT `+billColumns+` FROM bills
WHERE user_id = ? AND is_paid = 0 AND due_date <= ?
ORDER BY due_date, id`, userID, formatDate(until))
}

// GetBill loads one bill owned by userID.
func (s *Store) GetBill(ctx context.Context, userID, id int64) (*bill.Bill, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+billColumns+` FROM bills WHERE id = ? AND user_id = ?`, id, userID)
	b, err := scanBill(row.Scan)
	if err != nil {
		return nil, mapError(err, "get bill")
	}
	return b, nil
}

// CreateBill inserts a bill.
func (s *Store) CreateBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	if err := ensureRefs(ctx, s.db, b.UserID, nil, b.CategoryID); err != nil {
		return nil, err
	}
	now := s.stamp()
	out := *b
	out.DueDate = domain.Day(b.DueDate)
	out.CreatedAt, out.UpdatedAt = now, now

	res, err := s.db.ExecContext(ctx, `
INSERT INTO bills (user_id, name, amount, currency, due_date, frequency, anchor_day, category_id, is_paid, last_paid_at, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		out.UserID, out.Name, out.Amount.String(), out.Currency, formatDate(out.DueDate),
		string(out.Frequency), out.AnchorDay, nullID(out.CategoryID), boolToInt(out.IsPaid), nullMillis(out.LastPaidAt),
		out.Notes, toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "create bill")
	}
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, mapError(err, "create bill")
	}
	return &out, nil
}

// UpdateBill saves every bill field.
func (s *Store) UpdateBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	if err := ensureRefs(ctx, s.db, b.UserID, nil, b.CategoryID); err != nil {
		return nil, err
	}
	if err := updateBill(ctx, s.db, b, s.stamp()); err != nil {
		return nil, err
	}
	return s.GetBill(ctx, b.UserID, b.ID)
}

// DeleteBill removes a bill.
func (s *Store) DeleteBill(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bills WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return mapError(err, "delete bill")
	}
	return checkAffected(res, "delete bill")
}

// RecordBillPayment saves the paid bill and, when t is non-nil, inserts the
// payment transaction in the same database transaction.
func (s *Store) RecordBillPayment(ctx context.Context, b *bill.Bill, t *transaction.Transaction) (*transaction.Transaction, error) {
	var created *transaction.Transaction
	err := s.withTx(ctx, "record bill payment", func(tx *sql.Tx) error {
		if err := updateBill(ctx, tx, b, s.stamp()); err != nil {
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

func updateBill(ctx context.Context, q queryer, b *bill.Bill, now time.Time) error {
	res, err := q.ExecContext(ctx, `
UPDATE bills
SET name = ?, amount = ?, currency = ?, due_date = ?, frequency = ?, anchor_day = ?, category_id = ?,
    is_paid = ?, last_paid_at = ?, notes = ?, updated_at = ?
WHERE id = ? AND user_id = ?`,
		b.Name, b.Amount.String(), b.Currency, formatDate(b.DueDate), string(b.Frequency), b.AnchorDay,
		nullID(b.CategoryID), boolToInt(b.IsPaid), nullMillis(b.LastPaidAt), b.Notes, toMillis(now),
		b.ID, b.UserID,
	)
	if err != nil {
		return mapError(err, "update bill")
	}
	return checkAffected(res, "update bill")
}

func (s *Store) queryBills(ctx context.Context, op, query string, args ...any) ([]bill.Bill, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, op)
	}
	defer rows.Close()

	bills := make([]bill.Bill, 0)
	for rows.Next() {
		b, err := scanBill(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, op)
	}
	return bills, nil
}

func scanBill(scan func(dest ...any) error) (*bill.Bill, error) {
	var (
		b                    bill.Bill
		amount, dueDate      string
		frequency            string
		categoryID           sql.NullInt64
		isPaid               int
		lastPaidAt           sql.NullInt64
		createdAt, updatedAt int64
	)
	if err := scan(&b.ID, &b.UserID, &b.Name, &amount, &b.Currency, &dueDate, &frequency, &b.AnchorDay,
		&categoryID, &isPaid, &lastPaidAt, &b.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if b.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	if b.DueDate, err = parseDate(dueDate); err != nil {
		return nil, err
	}
	b.Frequency = domain.Frequency(frequency)
	b.CategoryID = fromNullID(categoryID)
	b.IsPaid = isPaid != 0
	b.LastPaidAt = fromNullMillis(lastPaidAt)
	b.CreatedAt = fromMillis(createdAt)
	b.UpdatedAt = fromMillis(updatedAt)
	return &b, nil
}
