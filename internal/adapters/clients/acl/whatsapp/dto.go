// Package whatsapp implements the Anti-Corruption Layer for the WhatsApp
// Cloud API and Twilio messaging: outbound message bodies, inbound webhook
// payloads and webhook signature checks.
package whatsapp

// TextMessageDTO matches POST /{phone-number-id}/messages for a text message.
type TextMessageDTO struct {
	MessagingProduct string      `json:"messaging_product"`
	RecipientType    string      `json:"recipient_type"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             TextBodyDTO `json:"text"`
}

// TextBodyDTO is the text payload of a message.
type TextBodyDTO struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url"`
}

// SendResponseDTO is the Cloud API send response.
type SendResponseDTO struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// TwilioMessageDTO is the part of the Twilio Message resource we read.
type TwilioMessageDTO struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// WebhookDTO matches the Cloud API webhook notification envelope.
type WebhookDTO struct {
	Object string     `json:"object"`
	Entry  []EntryDTO `json:"entry"`
}

// EntryDTO is one business account entry.
type EntryDTO struct {
	ID      string      `json:"id"`
	Changes []ChangeDTO `json:"changes"`
}

// ChangeDTO is one change notification.
type ChangeDTO struct {
	Field string   `json:"field"`
	Value ValueDTO `json:"value"`
}

// ValueDTO carries inbound messages. Status updates arrive with no messages.
type ValueDTO struct {
	MessagingProduct string              `json:"messaging_product"`
	Messages         []InboundMessageDTO `json:"messages"`
}

// InboundMessageDTO is one inbound message.
type InboundMessageDTO struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *TextBodyDTO `json:"text"`
}
