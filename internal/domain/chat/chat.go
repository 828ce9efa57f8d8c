// Package chat holds the advisor conversation history.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// MaxContentLength bounds a single message.
const MaxContentLength = 4000

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one turn of the advisor conversation.
type Message struct {
	ID        int64
	UserID    int64
	Role      Role
	Content   string
	CreatedAt time.Time
}

// Validate checks business rules for the Message entity.
func (m *Message) Validate() error {
	fields := make(map[string]string)

	if !m.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", m.Role)
	}
	switch {
	case strings.TrimSpace(m.Content) == "":
		fields["content"] = domain.MsgRequired
	case len(m.Content) > MaxContentLength:
		fields["content"] = fmt.Sprintf("must be at most %d characters", MaxContentLength)
	}

	return domain.FieldsError(fields)
}
