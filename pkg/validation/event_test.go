package validation

import (
	"strings"
	"testing"
)

func TestValidateSessionID(t *testing.T) {
	v := NewEventValidator()

	tests := []struct {
		name      string
		sessionID string
		wantErr   bool
	}{
		{"valid", "session-123", false},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", false},
		{"empty", "", true},
		{"at limit", strings.Repeat("a", 128), false},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSessionID(tt.sessionID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSessionID(%q) error = %v, wantErr %v", tt.sessionID, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChatID(t *testing.T) {
	v := NewEventValidator()

	tests := []struct {
		name    string
		chatID  string
		wantErr bool
	}{
		{"valid", "chat-1", false},
		{"empty", "", true},
		{"too long", strings.Repeat("c", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateChatID(tt.chatID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChatID(%q) error = %v, wantErr %v", tt.chatID, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEventType(t *testing.T) {
	v := NewEventValidator()

	tests := []struct {
		name      string
		eventType string
		wantErr   bool
	}{
		{"known type", "message_sent", false},
		{"novel type", "lectio_divina_opened", false},
		{"empty", "", true},
		{"at limit", strings.Repeat("e", 64), false},
		{"too long", strings.Repeat("e", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEventType(tt.eventType)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEventType(%q) error = %v, wantErr %v", tt.eventType, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTrackEvent(t *testing.T) {
	v := NewEventValidator()

	if err := v.ValidateTrackEvent("session-1", "chat-1", "message_sent"); err != nil {
		t.Errorf("Expected valid track event, got %v", err)
	}
	if err := v.ValidateTrackEvent("", "chat-1", "message_sent"); err == nil {
		t.Error("Expected error for missing session_id")
	}
	if err := v.ValidateTrackEvent("session-1", "", "message_sent"); err == nil {
		t.Error("Expected error for missing chat_id")
	}
	if err := v.ValidateTrackEvent("session-1", "chat-1", ""); err == nil {
		t.Error("Expected error for missing event_type")
	}
}
