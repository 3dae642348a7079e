package validation

import (
	"strings"
	"testing"
)

func TestValidateContactRequest(t *testing.T) {
	v := NewContactRequestValidator()

	tests := []struct {
		name    string
		reqName string
		email   string
		subject string
		message string
		wantErr bool
	}{
		{"valid", "Jane Doe", "jane@example.com", "Parish question", "When is Mass on Sunday?", false},
		{"valid without subject", "Jane Doe", "jane@example.com", "", "When is Mass on Sunday?", false},
		{"missing name", "", "jane@example.com", "", "Hello", true},
		{"name too long", strings.Repeat("n", 129), "jane@example.com", "", "Hello", true},
		{"missing email", "Jane Doe", "", "", "Hello", true},
		{"invalid email", "Jane Doe", "not-an-email", "", "Hello", true},
		{"email too long", "Jane Doe", strings.Repeat("a", 250) + "@example.com", "", "Hello", true},
		{"missing message", "Jane Doe", "jane@example.com", "", "", true},
		{"message too long", "Jane Doe", "jane@example.com", "", strings.Repeat("m", 5001), true},
		{"subject too long", "Jane Doe", "jane@example.com", strings.Repeat("s", 256), "Hello", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateContactRequest(tt.reqName, tt.email, tt.subject, tt.message)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContactRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateContactEmail(t *testing.T) {
	v := NewContactRequestValidator()

	valid := []string{"a@b.co", "first.last@example.org", "user+tag@mail.example.com"}
	for _, email := range valid {
		if err := v.ValidateEmail(email); err != nil {
			t.Errorf("Expected %q to be valid, got %v", email, err)
		}
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user@domain"}
	for _, email := range invalid {
		if err := v.ValidateEmail(email); err == nil {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}
