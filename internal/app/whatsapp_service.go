package app

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/category"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/domain/user"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Inbound message ids are remembered this long to drop provider retries.
const (
	seenMessagesSize = 1024
	seenMessagesTTL  = 24 * time.Hour
)

// Message intents returned by the parser.
const (
	intentExpense = "expense"
	intentIncome  = "income"
)

const (
	replyUnknownNumber = "This number is not linked to a MoneyGoal account. Add it in your settings to log transactions by message."
	replyHelp          = "Send something like \"spent 12.50 on lunch\" to log an expense, or ask me anything about your finances."
	replyFailed        = "Sorry, I could not process that message. Please try again later."
)

const parserSystemPrompt = `You turn a short chat message into JSON for a personal finance app.
Respond with one JSON object with the keys:
  "intent": "expense", "income" or "question"
  "type": "expense" or "income" (empty for questions)
  "amount": positive number (0 for questions)
  "currency": 3-letter ISO code if the message names one, else ""
  "description": short description of the purchase or income
  "category": best matching category from the list, else ""
Use "question" for anything that does not record money spent or received.`

// Compile-time check that WhatsAppService implements ports.WhatsAppService.
var _ ports.WhatsAppService = (*WhatsAppService)(nil)

// WhatsAppService implements ports.WhatsAppService.
type WhatsAppService struct {
	users       ports.UserRepository
	txs         ports.TransactionService
	categories  ports.CategoryService
	advisor     ports.ChatService
	llm         ports.LLMClient
	senders     map[string]ports.MessageSender
	verifyToken string
	seen        *expirable.LRU[string, struct{}]
	logger      *slog.Logger
	now         func() time.Time
}

// NewWhatsAppService creates a WhatsAppService. Replies go through the
// sender whose Channel matches the inbound message.
func NewWhatsAppService(users ports.UserRepository, txs ports.TransactionService,
	categories ports.CategoryService, advisor ports.ChatService, llm ports.LLMClient,
	senders []ports.MessageSender, verifyToken string, logger *slog.Logger,
) *WhatsAppService {
	bySender := make(map[string]ports.MessageSender, len(senders))
	for _, s := range senders {
		bySender[s.Channel()] = s
	}
	return &WhatsAppService{
		users:       users,
		txs:         txs,
		categories:  categories,
		advisor:     advisor,
		llm:         llm,
		senders:     bySender,
		verifyToken: verifyToken,
		seen:        expirable.NewLRU[string, struct{}](seenMessagesSize, nil, seenMessagesTTL),
		logger:      orDiscard(logger),
		now:         time.Now,
	}
}

// VerifyWebhook echoes challenge when mode is subscribe and token matches
// the configured verify token.
func (s *WhatsAppService) VerifyWebhook(mode, token, challenge string) (string, error) {
	if mode != "subscribe" || s.verifyToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(s.verifyToken)) != 1 {
		return "", fmt.Errorf("webhook verification: %w", domain.ErrForbidden)
	}
	return challenge, nil
}

// HandleMessage logs a transaction or answers a question, then replies on
// the inbound channel. Redelivered message ids are ignored.
func (s *WhatsAppService) HandleMessage(ctx context.Context, msg ports.InboundMessage) error {
	sender, ok := s.senders[msg.Channel]
	if !ok {
		return fmt.Errorf("no sender for channel %q: %w", msg.Channel, domain.ErrUnavailable)
	}
	if msg.MessageID != "" {
		if s.seen.Contains(msg.MessageID) {
			s.logger.DebugContext(ctx, "duplicate inbound message", slog.String("message_id", msg.MessageID))
			return nil
		}
		s.seen.Add(msg.MessageID, struct{}{})
	}

	phone := user.NormalizePhone(msg.From)
	if phone == "" {
		return domain.NewValidationError("from", "invalid phone number")
	}
	s.logger.InfoContext(ctx, "handling inbound message",
		slog.String("channel", msg.Channel),
		slog.String("message_id", msg.MessageID),
	)

	u, err := s.users.GetUserByPhone(ctx, phone)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return s.reply(ctx, sender, phone, replyUnknownNumber)
	case err != nil:
		return err
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return s.reply(ctx, sender, phone, replyHelp)
	}

	answer, err := s.respond(ctx, u, text, msg.MessageID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to handle inbound message",
			slog.String("operation", "HandleMessage"),
			slog.Int64("user_id", u.ID),
			slog.Any("error", err),
		)
		answer = replyFailed
		if errors.Is(err, domain.ErrValidation) {
			answer = replyHelp
		}
	}
	return s.reply(ctx, sender, phone, answer)
}

func (s *WhatsAppService) respond(ctx context.Context, u *user.User, text, messageID string) (string, error) {
	cs, err := s.categories.ListCategories(ctx, u.ID)
	if err != nil {
		return "", err
	}
	parsed, err := s.parse(ctx, text, cs)
	if err != nil {
		return "", err
	}

	if parsed.Intent != intentExpense && parsed.Intent != intentIncome {
		reply, err := s.advisor.SendMessage(ctx, u.ID, text)
		if err != nil {
			return "", err
		}
		return reply.Content, nil
	}

	created, err := s.record(ctx, u, parsed, cs, messageID)
	if err != nil {
		return "", err
	}
	return confirmation(created, cs), nil
}

// parsedMessage is the JSON object the parser model returns.
type parsedMessage struct {
	Intent      string          `json:"intent"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

func (s *WhatsAppService) parse(ctx context.Context, text string, cs []category.Category) (*parsedMessage, error) {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, fmt.Sprintf("%s (%s)", c.Name, c.Type))
	}

	raw, err := s.llm.Generate(ctx, ports.LLMRequest{
		System: parserSystemPrompt + "\nCategories: " + strings.Join(names, ", "),
		Prompt: text,
		JSON:   true,
	})
	if err != nil {
		return nil, err
	}

	var p parsedMessage
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decoding parsed message: %w", err)
	}
	p.Intent = strings.ToLower(strings.TrimSpace(p.Intent))
	return &p, nil
}

func (s *WhatsAppService) record(ctx context.Context, u *user.User, p *parsedMessage, cs []category.Category,
	messageID string,
) (*transaction.Transaction, error) {
	typ := transaction.Type(p.Intent)
	if t := transaction.Type(strings.ToLower(p.Type)); t == transaction.TypeIncome || t == transaction.TypeExpense {
		typ = t
	}
	currency := u.BaseCurrency
	if c, err := domain.NormalizeCurrency(p.Currency); err == nil {
		currency = c
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		description = p.Category
	}

	return s.txs.CreateTransaction(ctx, &transaction.Transaction{
		UserID:      u.ID,
		CategoryID:  matchCategory(cs, p.Category, typ),
		Type:        typ,
		Amount:      p.Amount.Abs(),
		Currency:    currency,
		Description: description,
		Date:        domain.Day(s.now()),
		Source:      transaction.SourceWhatsApp,
		ExternalID:  messageID,
	})
}

func confirmation(tx *transaction.Transaction, cs []category.Category) string {
	verb := "expense"
	if tx.Type == transaction.TypeIncome {
		verb = "income"
	}
	msg := fmt.Sprintf("Recorded %s of %s %s: %s", verb, tx.Amount.StringFixed(2), tx.Currency, tx.Description)
	if tx.CategoryID != nil {
		if name, ok := categoryNames(cs)[*tx.CategoryID]; ok {
			msg += " (" + name + ")"
		}
	}
	return msg
}

func (s *WhatsAppService) reply(ctx context.Context, sender ports.MessageSender, to, body string) error {
	if err := sender.SendText(ctx, to, body); err != nil {
		s.logger.ErrorContext(ctx, "failed to send reply",
			slog.String("operation", "reply"),
			slog.String("channel", sender.Channel()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
