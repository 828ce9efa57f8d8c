package sqlite

import (
	"context"
	"database/sql"

	"github.com/jsamuelsen11/moneygoal/internal/domain/user"
)

const userColumns = `id, email, name, password_hash, base_currency, whatsapp_phone, created_at, updated_at`

// CreateUser inserts a new account. A duplicate email or phone is a conflict.
func (s *Store) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	now := s.stamp()
	out := *u
	out.CreatedAt, out.UpdatedAt = now, now

	res, err := s.db.ExecContext(ctx, `
INSERT INTO users (email, name, password_hash, base_currency, whatsapp_phone, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		out.Email, out.Name, out.PasswordHash, out.BaseCurrency, nullString(out.WhatsAppPhone),
		toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "create user")
	}
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, mapError(err, "create user")
	}
	return &out, nil
}

// GetUser loads an account by id.
func (s *Store) GetUser(ctx context.Context, id int64) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row.Scan)
	if err != nil {
		return nil, mapError(err, "get user")
	}
	return u, nil
}

// GetUserByEmail loads an account by normalized email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row.Scan)
	if err != nil {
		return nil, mapError(err, "get user by email")
	}
	return u, nil
}

// GetUserByPhone loads the account linked to a normalized WhatsApp number.
func (s *Store) GetUserByPhone(ctx context.Context, phone string) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE whatsapp_phone = ?`, phone)
	u, err := scanUser(row.Scan)
	if err != nil {
		return nil, mapError(err, "get user by phone")
	}
	return u, nil
}

// UpdateUser saves profile and settings fields.
func (s *Store) UpdateUser(ctx context.Context, u *user.User) (*user.User, error) {
	now := s.stamp()
	res, err := s.db.ExecContext(ctx, `
UPDATE users
SET email = ?, name = ?, password_hash = ?, base_currency = ?, whatsapp_phone = ?, updated_at = ?
WHERE id = ?`,
		u.Email, u.Name, u.PasswordHash, u.BaseCurrency, nullString(u.WhatsAppPhone), toMillis(now), u.ID,
	)
	if err != nil {
		return nil, mapError(err, "update user")
	}
	if err := checkAffected(res, "update user"); err != nil {
		return nil, err
	}
	return s.GetUser(ctx, u.ID)
}

func scanUser(scan func(dest ...any) error) (*user.User, error) {
	var (
		u                    user.User
		phone                sql.NullString
		createdAt, updatedAt int64
	)
	if err := scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.BaseCurrency, &phone, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	u.WhatsAppPhone = phone.String
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return &u, nil
}
