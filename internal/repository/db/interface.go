package db

import (
	"context"
	"time"
)

// UserStore defines the user persistence operations
type UserStore interface {
	GetUserByUsername(username string) (*User, error)
	CreateUser(username, email, password string) (*User, error)
}

// ContactStore defines the contact message persistence operations
type ContactStore interface {
	CreateContactMessage(name, email, subject, message string) (*ContactMessage, error)
}

// EventStore defines the analytics event operations. Events are append-only:
// there is no update or delete path.
type EventStore interface {
	InsertEvent(ctx context.Context, event *AnalyticsEvent) error
	EventCountsOverTime(ctx context.Context, interval string, start, end time.Time, eventType string) ([]EventCountBucket, error)
	EventTypeCounts(ctx context.Context, start, end time.Time) ([]EventTypeCount, error)
}
