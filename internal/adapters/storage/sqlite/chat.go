package sqlite

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/moneygoal/internal/domain/chat"
)

// AppendMessage stores one advisor conversation message.
func (s *Store) AppendMessage(ctx context.Context, m *chat.Message) (*chat.Message, error) {
	out := *m
	out.CreatedAt = s.stamp()
	res, err := s.db.ExecContext(ctx, `
INSERT INTO chat_messages (user_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		out.UserID, string(out.Role), out.Content, toMillis(out.CreatedAt),
	)
	if err != nil {
		return nil, mapError(err, "append message")
	}
	if out.ID, err = res.LastInsertId(); err != nil {
		return nil, mapError(err, "append message")
	}
	return &out, nil
}

// ListMessages returns the latest limit messages in chronological order.
// A non-positive limit returns the whole conversation.
func (s *Store) ListMessages(ctx context.Context, userID int64, limit int) ([]chat.Message, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, role, content, created_at FROM (
    SELECT id, user_id, role, content, created_at
    FROM chat_messages
    WHERE user_id = ?
    ORDER BY id DESC
    LIMIT ?
) ORDER BY id`, userID, limit)
	if err != nil {
		return nil, mapError(err, "list messages")
	}
	defer rows.Close()

	msgs := make([]chat.Message, 0)
	for rows.Next() {
		var (
			m         chat.Message
			role      string
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.UserID, &role, &m.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Role = chat.Role(role)
		m.CreatedAt = fromMillis(createdAt)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list messages")
	}
	return msgs, nil
}

// ClearMessages deletes the user's conversation.
func (s *Store) ClearMessages(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE user_id = ?`, userID); err != nil {
		return mapError(err, "clear messages")
	}
	return nil
}
