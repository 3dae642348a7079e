package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// ContactRequestValidator validates contact form submissions
type ContactRequestValidator struct{}

// NewContactRequestValidator creates a new ContactRequestValidator
func NewContactRequestValidator() *ContactRequestValidator {
	return &ContactRequestValidator{}
}

var contactEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateName validates the sender name
func (v *ContactRequestValidator) ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if len(name) > 128 {
		return fmt.Errorf("name must be at most 128 characters long, got %d", len(name))
	}
	return nil
}

// ValidateEmail validates the sender email address
func (v *ContactRequestValidator) ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email cannot be empty")
	}
	if !contactEmailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	if len(email) > 255 {
		return fmt.Errorf("email must be at most 255 characters long, got %d", len(email))
	}
	return nil
}

// ValidateMessage validates the message body
func (v *ContactRequestValidator) ValidateMessage(message string) error {
	if message == "" {
		return errors.New("message cannot be empty")
	}
	if len(message) > 5000 {
		return fmt.Errorf("message must be at most 5000 characters long, got %d", len(message))
	}
	return nil
}

// ValidateSubject validates the optional subject line
func (v *ContactRequestValidator) ValidateSubject(subject string) error {
	if len(subject) > 255 {
		return fmt.Errorf("subject must be at most 255 characters long, got %d", len(subject))
	}
	return nil
}

// ValidateContactRequest validates a complete contact form submission
func (v *ContactRequestValidator) ValidateContactRequest(name, email, subject, message string) error {
	if err := v.ValidateName(name); err != nil {
		return err
	}
	if err := v.ValidateEmail(email); err != nil {
		return err
	}
	if err := v.ValidateSubject(subject); err != nil {
		return err
	}
	if err := v.ValidateMessage(message); err != nil {
		return err
	}
	return nil
}
