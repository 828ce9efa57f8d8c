package chat

import (
	"strings"
	"testing"
)

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msg     Message
		wantErr bool
	}{
		{"user message", Message{Role: RoleUser, Content: "How am I doing?"}, false},
		{"assistant message", Message{Role: RoleAssistant, Content: "Great."}, false},
		{"system role rejected", Message{Role: "system", Content: "x"}, true},
		{"empty content", Message{Role: RoleUser, Content: "  "}, true},
		{"too long", Message{Role: RoleUser, Content: strings.Repeat("a", MaxContentLength+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.msg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
