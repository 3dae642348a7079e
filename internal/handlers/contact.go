package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"verbum-app/internal/logger"
	"verbum-app/internal/service/contact"
)

// ContactRequest is the wire shape of a contact form submission
type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ContactResponse echoes the stored submission identifier
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ContactHandlers serves the contact form endpoint
type ContactHandlers struct {
	contact *contact.ContactService
}

// NewContactHandlers creates new ContactHandlers
func NewContactHandlers(contactService *contact.ContactService) *ContactHandlers {
	return &ContactHandlers{contact: contactService}
}

// SubmitContact validates and stores a contact form submission
func (h *ContactHandlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.contact.Submit(contact.SubmitRequest{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		SessionID: req.SessionID,
	})
	if err != nil {
		if errors.Is(err, contact.ErrInvalidSubmission) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Log.WithError(err).Error("Error storing contact message")
		writeError(w, http.StatusInternalServerError, "failed to store contact message")
		return
	}

	writeJSON(w, http.StatusOK, ContactResponse{Success: true, ID: result.ID})
}
