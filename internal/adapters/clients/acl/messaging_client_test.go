package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

func TestCloudAPISender_SendText(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/1234/messages" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer meta-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["to"] != "5511999990000" || body["messaging_product"] != "whatsapp" {
			t.Errorf("body = %v", body)
		}
		writeJSON(t, w, map[string]any{"messages": []map[string]any{{"id": "wamid.1"}}})
	}))
	defer ts.Close()

	sender := NewCloudAPISender(newTestClient(t, ts.URL),
		config.WhatsAppConfig{PhoneNumberID: "1234", AccessToken: "meta-token"}, slog.Default())

	if sender.Channel() != ports.ChannelWhatsApp {
		t.Errorf("Channel() = %q", sender.Channel())
	}
	if err := sender.SendText(context.Background(), "+55 11 99999-0000", "hello"); err != nil {
		t.Fatalf("SendText() error = %v", err)
	}
}

func TestCloudAPISender_Forbidden(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"permission denied","code":10}}`))
	}))
	defer ts.Close()

	sender := NewCloudAPISender(newTestClient(t, ts.URL),
		config.WhatsAppConfig{PhoneNumberID: "1234", AccessToken: "x"}, slog.Default())

	err := sender.SendText(context.Background(), "+15550001111", "hi")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("SendText() error = %v, want ErrForbidden", err)
	}
}

func TestTwilioSender_SendText(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2010-04-01/Accounts/AC1/Messages.json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "AC1" || pass != "tok" {
			t.Errorf("basic auth = %q/%q (%v)", user, pass, ok)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("From") != "whatsapp:+14155238886" || r.PostForm.Get("To") != "whatsapp:+15550001111" {
			t.Errorf("form = %v", r.PostForm)
		}
		if r.PostForm.Get("Body") != "Saved!" {
			t.Errorf("Body = %q", r.PostForm.Get("Body"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
	}))
	defer ts.Close()

	sender := NewTwilioSender(newTestClient(t, ts.URL),
		config.TwilioConfig{AccountSID: "AC1", AuthToken: "tok", FromNumber: "+14155238886"}, slog.Default())

	if sender.Channel() != ports.ChannelTwilio {
		t.Errorf("Channel() = %q", sender.Channel())
	}
	if err := sender.SendText(context.Background(), "whatsapp:+15550001111", "Saved!"); err != nil {
		t.Fatalf("SendText() error = %v", err)
	}
}

func TestTwilioSender_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	// Twilio answers 201; a bare 200 is treated as an unexpected response.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"sid": "SM1"})
	}))
	defer ts.Close()

	sender := NewTwilioSender(newTestClient(t, ts.URL),
		config.TwilioConfig{AccountSID: "AC1", AuthToken: "tok", FromNumber: "+1"}, slog.Default())

	if err := sender.SendText(context.Background(), "+15550001111", "x"); err == nil {
		t.Error("SendText() error = nil, want error for 200 response")
	}
}
