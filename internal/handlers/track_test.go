package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"verbum-app/internal/repository/db"
	"verbum-app/internal/service/analytics"
	"verbum-app/internal/testutil"
)

func trackRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	return trackRequestWithStore(t, body, &testutil.MockEventStore{})
}

func trackRequestWithStore(t *testing.T, body string, store *testutil.MockEventStore) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewTrackHandlers(analytics.NewAnalyticsService(store))

	req := httptest.NewRequest("POST", "/api/track", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.TrackEvent(rec, req)
	return rec
}

func TestTrackEventSuccess(t *testing.T) {
	store := &testutil.MockEventStore{}
	body := `{"session_id": "s1", "chat_id": "c1", "event_type": "message_sent", "event_data": {"length": 12}}`

	rec := trackRequestWithStore(t, body, store)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp TrackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success true")
	}
	if resp.ID == "" {
		t.Error("Expected a generated event id")
	}
	if len(store.Inserted) != 1 {
		t.Fatalf("Expected 1 store write, got %d", len(store.Inserted))
	}
	if string(store.Inserted[0].EventData) != `{"length": 12}` {
		t.Errorf("Unexpected event data: %s", store.Inserted[0].EventData)
	}
}

func TestTrackEventMalformedBody(t *testing.T) {
	rec := trackRequest(t, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestTrackEventMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing session_id", `{"chat_id": "c1", "event_type": "message_sent"}`},
		{"missing chat_id", `{"session_id": "s1", "event_type": "message_sent"}`},
		{"missing event_type", `{"session_id": "s1", "chat_id": "c1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutil.MockEventStore{}
			rec := trackRequestWithStore(t, tt.body, store)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
			if len(store.Inserted) != 0 {
				t.Errorf("Expected no store write on invalid event, got %d", len(store.Inserted))
			}
		})
	}
}

func TestTrackEventStoreFailureHidesDetail(t *testing.T) {
	store := &testutil.MockEventStore{
		InsertEventFunc: func(ctx context.Context, event *db.AnalyticsEvent) error {
			return errors.New("dial tcp 10.0.0.5:9000: connection refused")
		},
	}

	body := `{"session_id": "s1", "chat_id": "c1", "event_type": "message_sent"}`
	rec := trackRequestWithStore(t, body, store)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["error"] != "failed to record event" {
		t.Errorf("Expected generic error message, got %q", resp["error"])
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Error("Store error detail must not reach the client")
	}
}
