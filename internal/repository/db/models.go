package db

import (
	"encoding/json"
	"time"
)

// User represents a user in the database. Mirrors the shape of the hosted
// identity provider so handlers work the same against either.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// ContactMessage represents a contact form submission
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// AnalyticsEvent represents one immutable telemetry row. EventData is an
// opaque payload stored as given; the taxonomy of event types is open-ended.
type AnalyticsEvent struct {
	ID        string
	SessionID string
	ChatID    string
	EventType string
	EventData json.RawMessage
	Timestamp time.Time
}

// EventCountBucket is one time bucket of the event-count aggregate
type EventCountBucket struct {
	Time  time.Time `json:"time"`
	Count uint64    `json:"count"`
}

// EventTypeCount is the total number of events recorded for one event type
type EventTypeCount struct {
	EventType string `json:"event_type"`
	Count     uint64 `json:"count"`
}
