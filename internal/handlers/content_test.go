package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"verbum-app/internal/content"
)

func testContentHandlers(t *testing.T) *ContentHandlers {
	t.Helper()
	dir := t.TempDir()

	saintsPath := filepath.Join(dir, "saints.json")
	saintsData := `{"10-04": [{"name": "Saint Francis of Assisi", "description": "Founder of the Franciscans"}]}`
	if err := os.WriteFile(saintsPath, []byte(saintsData), 0644); err != nil {
		t.Fatalf("Failed to write saints fixture: %v", err)
	}

	readingsPath := filepath.Join(dir, "readings.json")
	readingsData := `{"12-25": {"first_reading": "Isaiah 52:7-10", "psalm": "Psalm 98", "gospel": "John 1:1-18"}}`
	if err := os.WriteFile(readingsPath, []byte(readingsData), 0644); err != nil {
		t.Fatalf("Failed to write readings fixture: %v", err)
	}

	saints, err := content.NewSaintsIndex(saintsPath)
	if err != nil {
		t.Fatalf("Failed to load saints fixture: %v", err)
	}
	lectionary, err := content.NewLectionary(readingsPath)
	if err != nil {
		t.Fatalf("Failed to load readings fixture: %v", err)
	}

	return NewContentHandlers(saints, lectionary)
}

func TestSaintsByDay(t *testing.T) {
	handler := testContentHandlers(t)

	req := httptest.NewRequest("GET", "/api/saints/10-04", nil)
	req.SetPathValue("day", "10-04")
	rec := httptest.NewRecorder()
	handler.SaintsByDay(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp SaintsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Day != "10-04" || len(resp.Saints) != 1 {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if resp.Saints[0].Name != "Saint Francis of Assisi" {
		t.Errorf("Unexpected saint: %s", resp.Saints[0].Name)
	}
}

func TestSaintsByDayNotFound(t *testing.T) {
	handler := testContentHandlers(t)

	req := httptest.NewRequest("GET", "/api/saints/02-02", nil)
	req.SetPathValue("day", "02-02")
	rec := httptest.NewRecorder()
	handler.SaintsByDay(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestSaintsByDayInvalidKey(t *testing.T) {
	handler := testContentHandlers(t)

	req := httptest.NewRequest("GET", "/api/saints/13-99", nil)
	req.SetPathValue("day", "13-99")
	rec := httptest.NewRecorder()
	handler.SaintsByDay(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestReadingsByDay(t *testing.T) {
	handler := testContentHandlers(t)

	req := httptest.NewRequest("GET", "/api/readings/12-25", nil)
	req.SetPathValue("day", "12-25")
	rec := httptest.NewRecorder()
	handler.ReadingsByDay(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ReadingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Readings == nil || resp.Readings.Gospel != "John 1:1-18" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestReadingsByDayNotFound(t *testing.T) {
	handler := testContentHandlers(t)

	req := httptest.NewRequest("GET", "/api/readings/06-01", nil)
	req.SetPathValue("day", "06-01")
	rec := httptest.NewRecorder()
	handler.ReadingsByDay(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestSaintsToday(t *testing.T) {
	handler := testContentHandlers(t)

	req := httptest.NewRequest("GET", "/api/saints/today", nil)
	rec := httptest.NewRecorder()
	handler.SaintsToday(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp SaintsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Day == "" {
		t.Error("Expected a day key in the response")
	}
}
