package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/clients/acl/whatsapp"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/platform/logging"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// maxWebhookBytes caps a webhook payload (256 KB).
const maxWebhookBytes = 256 << 10

// emptyTwiML acknowledges a Twilio webhook without sending a message; the
// reply goes out through the REST API instead.
const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

var errInvalidSignature = fmt.Errorf("invalid webhook signature: %w", domain.ErrUnauthorized)

// WebhookHandler receives inbound messages from the WhatsApp Cloud API and
// from Twilio. Every payload must carry a valid signature; a channel whose
// secret is not configured rejects all deliveries.
type WebhookHandler struct {
	svc    ports.WhatsAppService
	meta   config.WhatsAppConfig
	twilio config.TwilioConfig
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(svc ports.WhatsAppService, meta config.WhatsAppConfig, twilio config.TwilioConfig) *WebhookHandler {
	return &WebhookHandler{svc: svc, meta: meta, twilio: twilio}
}

// VerifyWhatsApp handles GET /webhooks/whatsapp, the Cloud API subscription
// handshake. The challenge is echoed back as plain text.
func (h *WebhookHandler) VerifyWhatsApp(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	challenge, err := h.svc.VerifyWebhook(q.Get("hub.mode"), q.Get("hub.verify_token"), q.Get("hub.challenge"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, challenge)
}

// ReceiveWhatsApp handles POST /webhooks/whatsapp. Once the payload is
// authenticated the response is always 200 so Meta does not redeliver
// messages that failed for application reasons.
func (h *WebhookHandler) ReceiveWhatsApp(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "could not be read"))
		return
	}

	if h.meta.AppSecret == "" ||
		!whatsapp.VerifyMetaSignature(h.meta.AppSecret, body, r.Header.Get("X-Hub-Signature-256")) {
		dto.WriteErrorResponse(w, r, errInvalidSignature)
		return
	}

	var payload whatsapp.WebhookDTO
	if err := json.Unmarshal(body, &payload); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	for _, msg := range whatsapp.InboundFromWebhook(payload) {
		h.handle(r, msg)
	}

	w.WriteHeader(http.StatusOK)
}

// ReceiveTwilio handles POST /webhooks/twilio.
func (h *WebhookHandler) ReceiveTwilio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBytes)
	if err := r.ParseForm(); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid form"))
		return
	}

	if h.twilio.AuthToken == "" || h.twilio.WebhookURL == "" ||
		!whatsapp.VerifyTwilioSignature(h.twilio.AuthToken, h.twilio.WebhookURL, r.PostForm, r.Header.Get("X-Twilio-Signature")) {
		dto.WriteErrorResponse(w, r, errInvalidSignature)
		return
	}

	if msg, ok := whatsapp.InboundFromTwilio(r.PostForm); ok {
		h.handle(r, msg)
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, emptyTwiML)
}

func (h *WebhookHandler) handle(r *http.Request, msg ports.InboundMessage) {
	if err := h.svc.HandleMessage(r.Context(), msg); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to handle inbound message",
			slog.String("channel", msg.Channel),
			slog.String("message_id", msg.MessageID),
			slog.Any("error", err),
		)
	}
}
