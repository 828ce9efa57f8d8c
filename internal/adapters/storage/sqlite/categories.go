package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/moneygoal/internal/domain/category"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

const categoryColumns = `id, user_id, name, type, color, icon, created_at`

// ListCategories returns the user's categories ordered by type then name.
func (s *Store) ListCategories(ctx context.Context, userID int64) ([]category.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+categoryColumns+`
FROM categories
WHERE user_id = ?
ORDER BY type, name COLLATE NOCASE`, userID)
	if err != nil {
		return nil, mapError(err, "list categories")
	}
	defer rows.Close()

	cats := make([]category.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list categories")
	}
	return cats, nil
}

// GetCategory loads one category owned by userID.
func (s *Store) GetCategory(ctx context.Context, userID, id int64) (*category.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ? AND user_id = ?`, id, userID)
	c, err := scanCategory(row.Scan)
	if err != nil {
		return nil, mapError(err, "get category")
	}
	return c, nil
}

// CreateCategory inserts a category. A duplicate name and type is a conflict.
func (s *Store) CreateCategory(ctx context.Context, c *category.Category) (*category.Category, error) {
	return s.insertCategory(ctx, s.db, c)
}

// CreateCategories inserts cs atomically.
func (s *Store) CreateCategories(ctx context.Context, cs []category.Category) ([]category.Category, error) {
	out := make([]category.Category, 0, len(cs))
	err := s.withTx(ctx, "create categories", func(tx *sql.Tx) error {
		for i := range cs {
			created, err := s.insertCategory(ctx, tx, &cs[i])
			if err != nil {
				return err
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

// UpdateCategory saves name, type, color and icon.
func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) (*category.Category, error) {
	res, err := s.db.ExecContext(ctx, `
UPDATE categories SET name = ?, type = ?, color = ?, icon = ?
WHERE id = ? AND user_id = ?`,
		c.Name, string(c.Type), c.Color, c.Icon, c.ID, c.UserID,
	)
	if err != nil {
		return nil, mapError(err, "update category")
	}
	if err := checkAffected(res, "update category"); err != nil {
		return nil, err
	}
	return s.GetCategory(ctx, c.UserID, c.ID)
}

// DeleteCategory removes the category. Transactions, bills and recurring
// expenses keep their rows with the category cleared; budgets on it are removed.
func (s *Store) DeleteCategory(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return mapError(err, "delete category")
	}
	return checkAffected(res, "delete category")
}

func (s *Store) insertCategory(ctx context.Context, q queryer, c *category.Category) (*category.Category, error) {
	out := *c
	out.CreatedAt = s.stamp()
	res, err := q.ExecContext(ctx, `
INSERT INTO categories (user_id, name, type, color, icon, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		out.UserID, out.Name, string(out.Type), out.Color, out.Icon, toMillis(out.CreatedAt),
	)
	if err != nil {
		return nil, mapError(err, "create category")
	}
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, mapError(err, "create category")
	}
	return &out, nil
}

func scanCategory(scan func(dest ...any) error) (*category.Category, error) {
	var (
		c         category.Category
		typ       string
		createdAt int64
	)
	if err := scan(&c.ID, &c.UserID, &c.Name, &typ, &c.Color, &c.Icon, &createdAt); err != nil {
		return nil, err
	}
	c.Type = transaction.Type(typ)
	c.CreatedAt = fromMillis(createdAt)
	return &c, nil
}
