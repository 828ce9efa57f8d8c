package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/clients/acl/whatsapp"
	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/platform/httpclient"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MessageSender = (*CloudAPISender)(nil)
	_ ports.HealthChecker = (*CloudAPISender)(nil)
	_ ports.MessageSender = (*TwilioSender)(nil)
	_ ports.HealthChecker = (*TwilioSender)(nil)
)

// CloudAPISender sends WhatsApp text messages through the Meta Graph API.
type CloudAPISender struct {
	req           *Requester
	phoneNumberID string
	accessToken   string
}

// NewCloudAPISender creates a sender for the business phone number in cfg.
// The client's BaseURL should include the Graph API version
// (e.g. "https://graph.facebook.com/v19.0").
func NewCloudAPISender(client *httpclient.Client, cfg config.WhatsAppConfig, logger *slog.Logger) *CloudAPISender {
	return &CloudAPISender{
		req:           NewRequester(client, logger),
		phoneNumberID: cfg.PhoneNumberID,
		accessToken:   cfg.AccessToken,
	}
}

// Channel implements [ports.MessageSender].
func (s *CloudAPISender) Channel() string {
	return ports.ChannelWhatsApp
}

// SendText posts a text message to the recipient. A failed send is not
// replayed so the user never receives the same reply twice.
func (s *CloudAPISender) SendText(ctx context.Context, to, body string) error {
	ctx = httpclient.AtMostOnce(ctx)
	path := "/" + url.PathEscape(s.phoneNumberID) + "/messages"
	var resp whatsapp.SendResponseDTO
	if err := s.req.Do(ctx, http.MethodPost, path, http.StatusOK, whatsapp.ToTextMessage(to, body), &resp,
		WithBearer(s.accessToken)); err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	return nil
}

// Name implements [ports.HealthChecker].
func (s *CloudAPISender) Name() string {
	return "whatsapp"
}

// HealthCheck implements [ports.HealthChecker] from the breaker state.
func (s *CloudAPISender) HealthCheck(_ context.Context) error {
	return breakerHealth(s.Name(), s.req.CircuitBreakerState())
}

// TwilioSender sends WhatsApp messages through Twilio's Messages resource.
type TwilioSender struct {
	req        *Requester
	accountSID string
	authToken  string
	from       string
}

// NewTwilioSender creates a sender for the Twilio account in cfg.
func NewTwilioSender(client *httpclient.Client, cfg config.TwilioConfig, logger *slog.Logger) *TwilioSender {
	return &TwilioSender{
		req:        NewRequester(client, logger),
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.FromNumber,
	}
}

// Channel implements [ports.MessageSender].
func (s *TwilioSender) Channel() string {
	return ports.ChannelTwilio
}

// SendText creates a Twilio message. Twilio answers 201 Created. Like the
// Cloud API sender it never replays a send.
func (s *TwilioSender) SendText(ctx context.Context, to, body string) error {
	ctx = httpclient.AtMostOnce(ctx)
	path := "/2010-04-01/Accounts/" + url.PathEscape(s.accountSID) + "/Messages.json"
	var resp whatsapp.TwilioMessageDTO
	if err := s.req.Do(ctx, http.MethodPost, path, http.StatusCreated, nil, &resp,
		WithForm(whatsapp.ToTwilioForm(s.from, to, body)),
		WithBasicAuth(s.accountSID, s.authToken),
	); err != nil {
		return fmt.Errorf("send twilio message: %w", err)
	}
	return nil
}

// Name implements [ports.HealthChecker].
func (s *TwilioSender) Name() string {
	return "twilio"
}

// HealthCheck implements [ports.HealthChecker] from the breaker state.
func (s *TwilioSender) HealthCheck(_ context.Context) error {
	return breakerHealth(s.Name(), s.req.CircuitBreakerState())
}
