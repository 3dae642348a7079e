package validation

import (
	"errors"
	"fmt"
)

// ChatMessage is the minimal message shape the validator needs
type ChatMessage struct {
	Role    string
	Content string
}

// ChatRequestValidator validates chat-related requests
type ChatRequestValidator struct{}

// NewChatRequestValidator creates a new ChatRequestValidator
func NewChatRequestValidator() *ChatRequestValidator {
	return &ChatRequestValidator{}
}

var validRoles = map[string]bool{
	"user":      true,
	"assistant": true,
	"system":    true,
}

// ValidateMessages validates a message history. Callers of the router must
// guarantee at least one message, so an empty history is rejected here.
func (v *ChatRequestValidator) ValidateMessages(messages []ChatMessage) error {
	if len(messages) == 0 {
		return errors.New("messages cannot be empty")
	}

	for i, msg := range messages {
		if !validRoles[msg.Role] {
			return fmt.Errorf("message %d has invalid role %q; must be one of: user, assistant, system", i, msg.Role)
		}
		if msg.Content == "" {
			return fmt.Errorf("message %d has empty content", i)
		}
	}

	return nil
}
