package handlers_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/clients/acl/whatsapp"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

const (
	testAppSecret   = "meta-app-secret"
	testTwilioToken = "twilio-auth-token"
	testTwilioURL   = "https://moneygoal.example.com/webhooks/twilio"
)

const cloudAPIPayload = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "1",
    "changes": [{
      "field": "messages",
      "value": {
        "messages": [
          {"from": "5511987654321", "id": "wamid.1", "type": "text", "text": {"body": "spent 12.50 on groceries"}},
          {"from": "5511987654321", "id": "wamid.2", "type": "image"}
        ]
      }
    }]
  }]
}`

func metaSignature(body string) string {
	mac := hmac.New(sha256.New, []byte(testAppSecret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func newWebhookHandler(svc ports.WhatsAppService) *handlers.WebhookHandler {
	return handlers.NewWebhookHandler(svc,
		config.WhatsAppConfig{VerifyToken: "verify-me", AppSecret: testAppSecret},
		config.TwilioConfig{AuthToken: testTwilioToken, WebhookURL: testTwilioURL},
	)
}

func TestVerifyWhatsApp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{name: "echoes challenge", wantStatus: http.StatusOK, wantBody: "1158201444"},
		{name: "wrong token", svcErr: domain.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWhatsAppService(t)
			challenge := "1158201444"
			if tt.svcErr != nil {
				challenge = ""
			}
			svc.EXPECT().VerifyWebhook("subscribe", "verify-me", "1158201444").Return(challenge, tt.svcErr)

			h := newWebhookHandler(svc)
			req := httptest.NewRequest(http.MethodGet,
				"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=1158201444", nil)

			rec := httptest.NewRecorder()
			h.VerifyWhatsApp(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestReceiveWhatsApp_DispatchesTextMessages(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWhatsAppService(t)
	svc.EXPECT().HandleMessage(mock.Anything, ports.InboundMessage{
		Channel:   ports.ChannelWhatsApp,
		From:      "+5511987654321",
		Text:      "spent 12.50 on groceries",
		MessageID: "wamid.1",
	}).Return(nil).Once()

	h := newWebhookHandler(svc)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", strings.NewReader(cloudAPIPayload))
	req.Header.Set("X-Hub-Signature-256", metaSignature(cloudAPIPayload))

	rec := httptest.NewRecorder()
	h.ReceiveWhatsApp(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestReceiveWhatsApp_HandlerErrorStillAcknowledged(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWhatsAppService(t)
	svc.EXPECT().HandleMessage(mock.Anything, mock.Anything).Return(errors.New("send failed"))

	h := newWebhookHandler(svc)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", strings.NewReader(cloudAPIPayload))
	req.Header.Set("X-Hub-Signature-256", metaSignature(cloudAPIPayload))

	rec := httptest.NewRecorder()
	h.ReceiveWhatsApp(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestReceiveWhatsApp_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		signature  string
		wantStatus int
	}{
		{name: "missing signature", body: cloudAPIPayload, wantStatus: http.StatusUnauthorized},
		{name: "tampered body", body: cloudAPIPayload + " ", signature: metaSignature(cloudAPIPayload), wantStatus: http.StatusUnauthorized},
		{name: "invalid JSON", body: `{"entry":`, signature: metaSignature(`{"entry":`), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWhatsAppService(t)
			h := newWebhookHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", strings.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set("X-Hub-Signature-256", tt.signature)
			}

			rec := httptest.NewRecorder()
			h.ReceiveWhatsApp(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestReceiveWhatsApp_NoSecretRejectsAll(t *testing.T) {
	t.Parallel()

	// Signed with an empty key, which is all a forger needs when no secret is set.
	mac := hmac.New(sha256.New, nil)
	mac.Write([]byte(cloudAPIPayload))
	forged := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	for name, signature := range map[string]string{"unsigned": "", "empty key": forged} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWhatsAppService(t)
			h := handlers.NewWebhookHandler(svc, config.WhatsAppConfig{VerifyToken: "verify-me"}, config.TwilioConfig{})
			req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", strings.NewReader(cloudAPIPayload))
			if signature != "" {
				req.Header.Set("X-Hub-Signature-256", signature)
			}

			rec := httptest.NewRecorder()
			h.ReceiveWhatsApp(rec, req)

			requireStatus(t, rec, http.StatusUnauthorized)
		})
	}
}

func twilioRequest(form url.Values, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/twilio", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if signature != "" {
		req.Header.Set("X-Twilio-Signature", signature)
	}
	return req
}

func TestReceiveTwilio(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"From":       {"whatsapp:+5511987654321"},
		"Body":       {"how much did I spend this month?"},
		"MessageSid": {"SM123"},
	}

	svc := mocks.NewMockWhatsAppService(t)
	svc.EXPECT().HandleMessage(mock.Anything, ports.InboundMessage{
		Channel:   ports.ChannelTwilio,
		From:      "+5511987654321",
		Text:      "how much did I spend this month?",
		MessageID: "SM123",
	}).Return(nil)

	h := newWebhookHandler(svc)
	rec := httptest.NewRecorder()
	h.ReceiveTwilio(rec, twilioRequest(form, whatsapp.TwilioSignature(testTwilioToken, testTwilioURL, form)))

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/xml") {
		t.Errorf("Content-Type = %q, want text/xml", ct)
	}
	if !strings.Contains(rec.Body.String(), "<Response></Response>") {
		t.Errorf("body = %q, want empty TwiML", rec.Body.String())
	}
}

func TestReceiveTwilio_BadSignature(t *testing.T) {
	t.Parallel()

	form := url.Values{"From": {"whatsapp:+5511987654321"}, "Body": {"hi"}}

	svc := mocks.NewMockWhatsAppService(t)
	h := newWebhookHandler(svc)

	rec := httptest.NewRecorder()
	h.ReceiveTwilio(rec, twilioRequest(form, "bm90LXRoZS1zaWduYXR1cmU="))

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestReceiveTwilio_MissingSettingsRejectsAll(t *testing.T) {
	t.Parallel()

	form := url.Values{"From": {"whatsapp:+5511987654321"}, "Body": {"hi"}}

	tests := []struct {
		name string
		cfg  config.TwilioConfig
	}{
		{name: "no auth token", cfg: config.TwilioConfig{WebhookURL: testTwilioURL}},
		{name: "no webhook url", cfg: config.TwilioConfig{AuthToken: testTwilioToken}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWhatsAppService(t)
			h := handlers.NewWebhookHandler(svc, config.WhatsAppConfig{}, tt.cfg)

			rec := httptest.NewRecorder()
			h.ReceiveTwilio(rec, twilioRequest(form, whatsapp.TwilioSignature(tt.cfg.AuthToken, tt.cfg.WebhookURL, form)))

			requireStatus(t, rec, http.StatusUnauthorized)
		})
	}
}
