package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

const goalColumns = `id, user_id, name, description, target_amount, current_amount, currency, deadline, status, created_at, updated_at`

// ListGoals returns the user's goals, newest first.
func (s *Store) ListGoals(ctx context.Context, userID int64) ([]goal.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+goalColumns+`
FROM goals
WHERE user_id = ?
ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, mapError(err, "list goals")
	}
	defer rows.Close()

	goals := make([]goal.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list goals")
	}
	return goals, nil
}

// GetGoal loads one goal owned by userID.
func (s *Store) GetGoal(ctx context.Context, userID, id int64) (*goal.Goal, error) {
	return getGoal(ctx, s.db, userID, id)
}

// CreateGoal inserts a goal. CurrentAmount is taken as given.
func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) (*goal.Goal, error) {
	now := s.stamp()
	out := *g
	out.CreatedAt, out.UpdatedAt = now, now

	res, err := s.db.ExecContext(ctx, `
INSERT INTO goals (user_id, name, description, target_amount, current_amount, currency, deadline, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		out.UserID, out.Name, out.Description, out.TargetAmount.String(), out.CurrentAmount.String(),
		out.Currency, nullDate(out.Deadline), string(out.Status), toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "create goal")
	}
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, mapError(err, "create goal")
	}
	return &out, nil
}

// UpdateGoal saves the editable fields of a goal. The stored CurrentAmount is
// authoritative, and the status is reconciled against the new target. A
// currency change rewrites the balance and the goal_amount of every linked
// transaction through convert.
func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal, convert ports.AmountConverter) (*goal.Goal, error) {
	var out *goal.Goal
	err := s.withTx(ctx, "update goal", func(tx *sql.Tx) error {
		stored, err := getGoal(ctx, tx, g.UserID, g.ID)
		if err != nil {
			return err
		}
		if stored.Currency != g.Currency {
			if convert == nil {
				return domain.NewValidationError("currency", "cannot change without a conversion rate")
			}
			if stored.CurrentAmount, err = rebaseGoal(ctx, tx, stored, convert); err != nil {
				return err
			}
		}
		stored.Name = g.Name
		stored.Description = g.Description
		stored.TargetAmount = g.TargetAmount
		stored.Currency = g.Currency
		stored.Deadline = g.Deadline
		stored.Status = g.Status
		stored.Apply(decimal.Zero)
		stored.UpdatedAt = s.stamp()

		if err := saveGoal(ctx, tx, stored); err != nil {
			return err
		}
		out = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// rebaseGoal converts each linked goal_amount and returns the new balance.
// The part of the balance not backed by transactions is converted as one
// amount, so removing a transaction later subtracts exactly what it added.
func rebaseGoal(ctx context.Context, tx *sql.Tx, g *goal.Goal, convert ports.AmountConverter) (decimal.Decimal, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, goal_amount FROM transactions WHERE goal_id = ? AND user_id = ?`, g.ID, g.UserID)
	if err != nil {
		return decimal.Zero, mapError(err, "list goal amounts")
	}
	type linked struct {
		id     int64
		amount decimal.Decimal
	}
	var links []linked
	for rows.Next() {
		var (
			l   linked
			raw string
		)
		if err := rows.Scan(&l.id, &raw); err != nil {
			rows.Close()
			return decimal.Zero, fmt.Errorf("scan goal amount: %w", err)
		}
		if l.amount, err = parseDecimal(raw); err != nil {
			rows.Close()
			return decimal.Zero, err
		}
		links = append(links, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return decimal.Zero, mapError(err, "list goal amounts")
	}

	manual := g.CurrentAmount
	balance := decimal.Zero
	for _, l := range links {
		manual = manual.Sub(l.amount)
		converted, err := convert(l.amount)
		if err != nil {
			return decimal.Zero, err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE transactions SET goal_amount = ? WHERE id = ?`,
			converted.String(), l.id); err != nil {
			return decimal.Zero, mapError(err, "rebase goal amount")
		}
		balance = balance.Add(converted)
	}

	if !manual.IsZero() {
		converted, err := convert(manual)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(converted)
	}
	return balance, nil
}

// DeleteGoal removes the goal. Linked transactions cascade.
func (s *Store) DeleteGoal(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return mapError(err, "delete goal")
	}
	return checkAffected(res, "delete goal")
}

func getGoal(ctx context.Context, q queryer, userID, id int64) (*goal.Goal, error) {
	row := q.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ? AND user_id = ?`, id, userID)
	g, err := scanGoal(row.Scan)
	if err != nil {
		return nil, mapError(err, "get goal")
	}
	return g, nil
}

func saveGoal(ctx context.Context, q queryer, g *goal.Goal) error {
	res, err := q.ExecContext(ctx, `
UPDATE goals
SET name = ?, description = ?, target_amount = ?, current_amount = ?, currency = ?, deadline = ?, status = ?, updated_at = ?
WHERE id = ? AND user_id = ?`,
		g.Name, g.Description, g.TargetAmount.String(), g.CurrentAmount.String(), g.Currency,
		nullDate(g.Deadline), string(g.Status), toMillis(g.UpdatedAt), g.ID, g.UserID,
	)
	if err != nil {
		return mapError(err, "save goal")
	}
	return checkAffected(res, "save goal")
}

// applyToGoal adds delta to the goal's balance within q.
func (s *Store) applyToGoal(ctx context.Context, q queryer, userID, goalID int64, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	g, err := getGoal(ctx, q, userID, goalID)
	if err != nil {
		return err
	}
	g.Apply(delta)
	g.UpdatedAt = s.stamp()
	return saveGoal(ctx, q, g)
}

func scanGoal(scan func(dest ...any) error) (*goal.Goal, error) {
	var (
		g                    goal.Goal
		target, current      string
		deadline             sql.NullString
		status               string
		createdAt, updatedAt int64
	)
	if err := scan(&g.ID, &g.UserID, &g.Name, &g.Description, &target, &current,
		&g.Currency, &deadline, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if g.TargetAmount, err = parseDecimal(target); err != nil {
		return nil, err
	}
	if g.CurrentAmount, err = parseDecimal(current); err != nil {
		return nil, err
	}
	if g.Deadline, err = fromNullDate(deadline); err != nil {
		return nil, err
	}
	g.Status = goal.Status(status)
	g.CreatedAt = fromMillis(createdAt)
	g.UpdatedAt = fromMillis(updatedAt)
	return &g, nil
}
