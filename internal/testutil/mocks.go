package testutil

import (
	"context"
	"errors"
	"time"

	"verbum-app/internal/repository/db"
	"verbum-app/internal/service/analytics"
	"verbum-app/internal/service/llm"
)

// MockUserStore is a mock implementation of db.UserStore for testing
type MockUserStore struct {
	GetUserByUsernameFunc func(username string) (*db.User, error)
	CreateUserFunc        func(username, email, password string) (*db.User, error)
}

func (m *MockUserStore) GetUserByUsername(username string) (*db.User, error) {
	if m.GetUserByUsernameFunc != nil {
		return m.GetUserByUsernameFunc(username)
	}
	return nil, errors.New("not implemented")
}

func (m *MockUserStore) CreateUser(username, email, password string) (*db.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(username, email, password)
	}
	return nil, errors.New("not implemented")
}

// MockContactStore is a mock implementation of db.ContactStore for testing
type MockContactStore struct {
	CreateContactMessageFunc func(name, email, subject, message string) (*db.ContactMessage, error)
}

func (m *MockContactStore) CreateContactMessage(name, email, subject, message string) (*db.ContactMessage, error) {
	if m.CreateContactMessageFunc != nil {
		return m.CreateContactMessageFunc(name, email, subject, message)
	}
	return nil, errors.New("not implemented")
}

// MockEventStore is a mock implementation of db.EventStore for testing.
// Inserted records every event passed to InsertEvent so tests can assert
// on store writes.
type MockEventStore struct {
	InsertEventFunc         func(ctx context.Context, event *db.AnalyticsEvent) error
	EventCountsOverTimeFunc func(ctx context.Context, interval string, start, end time.Time, eventType string) ([]db.EventCountBucket, error)
	EventTypeCountsFunc     func(ctx context.Context, start, end time.Time) ([]db.EventTypeCount, error)

	Inserted []*db.AnalyticsEvent
}

func (m *MockEventStore) InsertEvent(ctx context.Context, event *db.AnalyticsEvent) error {
	m.Inserted = append(m.Inserted, event)
	if m.InsertEventFunc != nil {
		return m.InsertEventFunc(ctx, event)
	}
	return nil
}

func (m *MockEventStore) EventCountsOverTime(ctx context.Context, interval string, start, end time.Time, eventType string) ([]db.EventCountBucket, error) {
	if m.EventCountsOverTimeFunc != nil {
		return m.EventCountsOverTimeFunc(ctx, interval, start, end, eventType)
	}
	return nil, errors.New("not implemented")
}

func (m *MockEventStore) EventTypeCounts(ctx context.Context, start, end time.Time) ([]db.EventTypeCount, error) {
	if m.EventTypeCountsFunc != nil {
		return m.EventTypeCountsFunc(ctx, start, end)
	}
	return nil, errors.New("not implemented")
}

// MockProvider is a mock implementation of llm.Provider for testing
type MockProvider struct {
	ChatWithHistoryFunc       func(ctx context.Context, messages []llm.Message, systemPrompt, model string) (string, error)
	ChatWithHistoryStreamFunc func(ctx context.Context, messages []llm.Message, systemPrompt, model string) (<-chan llm.StreamChunk, error)
}

func (m *MockProvider) ChatWithHistory(ctx context.Context, messages []llm.Message, systemPrompt, model string) (string, error) {
	if m.ChatWithHistoryFunc != nil {
		return m.ChatWithHistoryFunc(ctx, messages, systemPrompt, model)
	}
	return "", errors.New("not implemented")
}

func (m *MockProvider) ChatWithHistoryStream(ctx context.Context, messages []llm.Message, systemPrompt, model string) (<-chan llm.StreamChunk, error) {
	if m.ChatWithHistoryStreamFunc != nil {
		return m.ChatWithHistoryStreamFunc(ctx, messages, systemPrompt, model)
	}
	return nil, errors.New("not implemented")
}

// MockEmitter records analytics events emitted fire-and-forget
type MockEmitter struct {
	Emitted []analytics.TrackEventRequest
}

func (m *MockEmitter) EmitAsync(req analytics.TrackEventRequest) {
	m.Emitted = append(m.Emitted, req)
}
