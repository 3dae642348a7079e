package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"verbum-app/internal/logger"
	"verbum-app/internal/repository/db"
	"verbum-app/pkg/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidEvent marks a client validation failure: required field missing
// or empty. Validation errors never reach the event store.
var ErrInvalidEvent = errors.New("invalid event")

// TrackEventRequest contains one telemetry event as sent by the client
type TrackEventRequest struct {
	SessionID string
	ChatID    string
	EventType string
	EventData json.RawMessage
	Timestamp time.Time
}

// AnalyticsService validates telemetry events and persists them. Each event
// is one synchronous insert: no queueing, no batching, no retry.
type AnalyticsService struct {
	events    db.EventStore
	validator *validation.EventValidator
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(events db.EventStore) *AnalyticsService {
	return &AnalyticsService{
		events:    events,
		validator: validation.NewEventValidator(),
	}
}

// TrackEvent validates and persists one event, returning the generated id
func (s *AnalyticsService) TrackEvent(ctx context.Context, req TrackEventRequest) (string, error) {
	if err := s.validator.ValidateTrackEvent(req.SessionID, req.ChatID, req.EventType); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidEvent, err)
	}

	event := &db.AnalyticsEvent{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		ChatID:    req.ChatID,
		EventType: req.EventType,
		EventData: req.EventData,
		Timestamp: req.Timestamp,
	}

	// Server-assigned timestamp when the client did not supply one
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.events.InsertEvent(ctx, event); err != nil {
		return "", fmt.Errorf("failed to record event: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.EventType,
		"session_id": event.SessionID,
	}).Debug("Recorded analytics event")

	return event.ID, nil
}

// EmitAsync records an event fire-and-forget. The insert runs in a detached
// goroutine with its own failure boundary: errors are logged and swallowed,
// never propagated to the action being annotated.
func (s *AnalyticsService) EmitAsync(req TrackEventRequest) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.WithField("panic", r).Error("Panic during analytics emission")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := s.TrackEvent(ctx, req); err != nil {
			logger.Log.WithError(err).WithField("event_type", req.EventType).Warn("Analytics emission failed")
		}
	}()
}

// EventCountsOverTime returns bucketed event counts for the stats endpoints
func (s *AnalyticsService) EventCountsOverTime(ctx context.Context, interval string, start, end time.Time, eventType string) ([]db.EventCountBucket, error) {
	return s.events.EventCountsOverTime(ctx, interval, start, end, eventType)
}

// EventTypeCounts returns per-type totals for the stats endpoints
func (s *AnalyticsService) EventTypeCounts(ctx context.Context, start, end time.Time) ([]db.EventTypeCount, error) {
	return s.events.EventTypeCounts(ctx, start, end)
}
