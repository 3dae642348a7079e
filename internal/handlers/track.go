package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"verbum-app/internal/logger"
	"verbum-app/internal/service/analytics"
)

// TrackRequest is the wire shape of one client telemetry event
type TrackRequest struct {
	SessionID string          `json:"session_id"`
	ChatID    string          `json:"chat_id"`
	EventType string          `json:"event_type"`
	EventData json.RawMessage `json:"event_data,omitempty"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}

// TrackResponse echoes the generated event identifier
type TrackResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// TrackHandlers serves the event ingestion endpoint
type TrackHandlers struct {
	analytics *analytics.AnalyticsService
}

// NewTrackHandlers creates new TrackHandlers
func NewTrackHandlers(analyticsService *analytics.AnalyticsService) *TrackHandlers {
	return &TrackHandlers{analytics: analyticsService}
}

// TrackEvent accepts one best-effort telemetry event and persists it
func (h *TrackHandlers) TrackEvent(w http.ResponseWriter, r *http.Request) {
	var req TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trackReq := analytics.TrackEventRequest{
		SessionID: req.SessionID,
		ChatID:    req.ChatID,
		EventType: req.EventType,
		EventData: req.EventData,
	}
	if req.Timestamp != nil {
		trackReq.Timestamp = *req.Timestamp
	}

	id, err := h.analytics.TrackEvent(r.Context(), trackReq)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidEvent) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Store detail goes to the log, not the client
		logger.Log.WithError(err).Error("Error recording analytics event")
		writeError(w, http.StatusInternalServerError, "failed to record event")
		return
	}

	writeJSON(w, http.StatusOK, TrackResponse{Success: true, ID: id})
}
