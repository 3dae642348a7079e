package contact

import (
	"encoding/json"
	"errors"
	"fmt"

	"verbum-app/internal/logger"
	"verbum-app/internal/repository/db"
	"verbum-app/internal/service/analytics"
	"verbum-app/pkg/validation"

	"github.com/sirupsen/logrus"
)

// ErrInvalidSubmission marks a client validation failure
var ErrInvalidSubmission = errors.New("invalid submission")

// EventEmitter is the fire-and-forget emission boundary the contact pipeline
// uses to annotate submissions. Implementations must never let emission
// failures reach the caller.
type EventEmitter interface {
	EmitAsync(req analytics.TrackEventRequest)
}

// SubmitRequest contains a contact form submission
type SubmitRequest struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	SessionID string
}

// SubmitResult contains the response from a stored submission
type SubmitResult struct {
	ID string
}

// ContactService persists contact form submissions and annotates them with a
// best-effort analytics event.
type ContactService struct {
	contacts  db.ContactStore
	emitter   EventEmitter
	validator *validation.ContactRequestValidator
}

// NewContactService creates a new ContactService
func NewContactService(contacts db.ContactStore, emitter EventEmitter) *ContactService {
	return &ContactService{
		contacts:  contacts,
		emitter:   emitter,
		validator: validation.NewContactRequestValidator(),
	}
}

// Submit validates and stores a contact message. The analytics event is
// emitted after the store succeeds; its outcome never changes the result.
func (s *ContactService) Submit(req SubmitRequest) (*SubmitResult, error) {
	if err := s.validator.ValidateContactRequest(req.Name, req.Email, req.Subject, req.Message); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSubmission, err)
	}

	msg, err := s.contacts.CreateContactMessage(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"contact_id": msg.ID}).Info("Contact form submitted")

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "anonymous"
	}

	eventData, _ := json.Marshal(map[string]string{"contact_id": msg.ID})
	s.emitter.EmitAsync(analytics.TrackEventRequest{
		SessionID: sessionID,
		ChatID:    msg.ID,
		EventType: "contact_form_submitted",
		EventData: eventData,
	})

	return &SubmitResult{ID: msg.ID}, nil
}
