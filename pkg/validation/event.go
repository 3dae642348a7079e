package validation

import (
	"errors"
	"fmt"
)

// EventValidator validates analytics event payloads
type EventValidator struct{}

// NewEventValidator creates a new EventValidator
func NewEventValidator() *EventValidator {
	return &EventValidator{}
}

// ValidateSessionID validates the client-generated session identifier
func (v *EventValidator) ValidateSessionID(sessionID string) error {
	if sessionID == "" {
		return errors.New("session_id is required")
	}
	if len(sessionID) > 128 {
		return fmt.Errorf("session_id must be at most 128 characters long, got %d", len(sessionID))
	}
	return nil
}

// ValidateChatID validates the subject identifier
func (v *EventValidator) ValidateChatID(chatID string) error {
	if chatID == "" {
		return errors.New("chat_id is required")
	}
	if len(chatID) > 128 {
		return fmt.Errorf("chat_id must be at most 128 characters long, got %d", len(chatID))
	}
	return nil
}

// ValidateEventType validates the event type. The taxonomy is open-ended, so
// only presence and length are checked.
func (v *EventValidator) ValidateEventType(eventType string) error {
	if eventType == "" {
		return errors.New("event_type is required")
	}
	if len(eventType) > 64 {
		return fmt.Errorf("event_type must be at most 64 characters long, got %d", len(eventType))
	}
	return nil
}

// ValidateTrackEvent validates a complete track request
func (v *EventValidator) ValidateTrackEvent(sessionID, chatID, eventType string) error {
	if err := v.ValidateSessionID(sessionID); err != nil {
		return err
	}
	if err := v.ValidateChatID(chatID); err != nil {
		return err
	}
	if err := v.ValidateEventType(eventType); err != nil {
		return err
	}
	return nil
}
