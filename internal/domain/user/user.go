// Package user holds account and settings data.
package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// Password bounds enforced at registration. bcrypt reads at most 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
)

// User is an account. BaseCurrency is the reporting currency for analytics,
// budgets and the advisor context.
type User struct {
	ID            int64
	Email         string
	Name          string
	PasswordHash  string
	BaseCurrency  string
	WhatsAppPhone string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks business rules for the User entity. Email, currency and
// phone are normalized in place.
func (u *User) Validate() error {
	fields := make(map[string]string)

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" {
		fields["email"] = domain.MsgRequired
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(u.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if u.BaseCurrency == "" {
		u.BaseCurrency = domain.DefaultCurrency
	}
	if c, err := domain.NormalizeCurrency(u.BaseCurrency); err != nil {
		fields["base_currency"] = "must be a 3-letter ISO 4217 code"
	} else {
		u.BaseCurrency = c
	}
	if u.WhatsAppPhone != "" {
		p := NormalizePhone(u.WhatsAppPhone)
		if len(p) < 8 {
			fields["whatsapp_phone"] = "must be an international phone number"
		}
		u.WhatsAppPhone = p
	}

	return domain.FieldsError(fields)
}

// NormalizePhone reduces a phone number to "+" followed by digits. It accepts
// the "whatsapp:+1..." form Twilio uses and the bare digits the Cloud API
// sends.
func NormalizePhone(raw string) string {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "whatsapp:")

	var b strings.Builder
	b.WriteByte('+')
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 1 {
		return ""
	}
	return b.String()
}
