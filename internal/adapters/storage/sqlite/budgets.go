package sqlite

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/moneygoal/internal/domain/budget"
)

const budgetColumns = `id, user_id, category_id, amount, currency, period, start_date, created_at, updated_at`

// ListBudgets returns the user's budgets in creation order.
func (s *Store) ListBudgets(ctx context.Context, userID int64) ([]budget.Budget, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, mapError(err, "list budgets")
	}
	defer rows.Close()

	budgets := make([]budget.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list budgets")
	}
	return budgets, nil
}

// GetBudget loads one budget owned by userID.
func (s *Store) GetBudget(ctx context.Context, userID, id int64) (*budget.Budget, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = ? AND user_id = ?`, id, userID)
	b, err := scanBudget(row.Scan)
	if err != nil {
		return nil, mapError(err, "get budget")
	}
	return b, nil
}

// CreateBudget inserts a budget for one of the user's categories.
func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) (*budget.Budget, error) {
	if err := ensureOwned(ctx, s.db, "categories", b.UserID, b.CategoryID); err != nil {
		return nil, err
	}
	now := s.stamp()
	out := *b
	out.CreatedAt, out.UpdatedAt = now, now

	res, err := s.db.ExecContext(ctx, `
INSERT INTO budgets (user_id, category_id, amount, currency, period, start_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		out.UserID, out.CategoryID, out.Amount.String(), out.Currency, string(out.Period),
		formatDate(out.StartDate), toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "create budget")
	}
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, mapError(err, "create budget")
	}
	return &out, nil
}

// UpdateBudget saves the budget fields.
func (s *Store) UpdateBudget(ctx context.Context, b *budget.Budget) (*budget.Budget, error) {
	if err := ensureOwned(ctx, s.db, "categories", b.UserID, b.CategoryID); err != nil {
		return nil, err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE budgets
SET category_id = ?, amount = ?, currency = ?, period = ?, start_date = ?, updated_at = ?
WHERE id = ? AND user_id = ?`,
		b.CategoryID, b.Amount.String(), b.Currency, string(b.Period), formatDate(b.StartDate),
		toMillis(s.stamp()), b.ID, b.UserID,
	)
	if err != nil {
		return nil, mapError(err, "update budget")
	}
	if err := checkAffected(res, "update budget"); err != nil {
		return nil, err
	}
	return s.GetBudget(ctx, b.UserID, b.ID)
}

// DeleteBudget removes a budget.
func (s *Store) DeleteBudget(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return mapError(err, "delete budget")
	}
	return checkAffected(res, "delete budget")
}

func scanBudget(scan func(dest ...any) error) (*budget.Budget, error) {
	var (
		b                    budget.Budget
		amount, period       string
		startDate            string
		createdAt, updatedAt int64
	)
	if err := scan(&b.ID, &b.UserID, &b.CategoryID, &amount, &b.Currency, &period,
		&startDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if b.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	if b.StartDate, err = parseDate(startDate); err != nil {
		return nil, err
	}
	b.Period = budget.Period(period)
	b.CreatedAt = fromMillis(createdAt)
	b.UpdatedAt = fromMillis(updatedAt)
	return &b, nil
}
