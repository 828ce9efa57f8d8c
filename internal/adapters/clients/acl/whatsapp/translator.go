package whatsapp

import (
	"net/url"
	"strings"

	"github.com/jsamuelsen11/moneygoal/internal/domain/user"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// ToTextMessage builds a Cloud API text message. The API expects the number
// without the leading plus.
func ToTextMessage(to, body string) TextMessageDTO {
	return TextMessageDTO{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               strings.TrimPrefix(user.NormalizePhone(to), "+"),
		Type:             "text",
		Text:             TextBodyDTO{Body: body},
	}
}

// ToTwilioForm builds the form for POST /2010-04-01/Accounts/{sid}/Messages.json.
// Both numbers are addressed on the whatsapp: channel.
func ToTwilioForm(from, to, body string) url.Values {
	form := url.Values{}
	form.Set("From", "whatsapp:"+user.NormalizePhone(from))
	form.Set("To", "whatsapp:"+user.NormalizePhone(to))
	form.Set("Body", body)
	return form
}

// InboundFromWebhook extracts the text messages from a Cloud API
// notification. Non-text messages and status updates are ignored.
func InboundFromWebhook(dto WebhookDTO) []ports.InboundMessage {
	var out []ports.InboundMessage
	for _, entry := range dto.Entry {
		for _, change := range entry.Changes {
			for _, m := range change.Value.Messages {
				if m.Type != "text" || m.Text == nil || strings.TrimSpace(m.Text.Body) == "" {
					continue
				}
				out = append(out, ports.InboundMessage{
					Channel:   ports.ChannelWhatsApp,
					From:      user.NormalizePhone(m.From),
					Text:      strings.TrimSpace(m.Text.Body),
					MessageID: m.ID,
				})
			}
		}
	}
	return out
}

// InboundFromTwilio extracts the message from a Twilio webhook form.
// The second result is false when the form carries no text.
func InboundFromTwilio(form url.Values) (ports.InboundMessage, bool) {
	body := strings.TrimSpace(form.Get("Body"))
	from := form.Get("From")
	if body == "" || from == "" {
		return ports.InboundMessage{}, false
	}
	return ports.InboundMessage{
		Channel:   ports.ChannelTwilio,
		From:      user.NormalizePhone(from),
		Text:      body,
		MessageID: form.Get("MessageSid"),
	}, true
}
