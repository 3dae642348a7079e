package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDataset(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saints.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
	return path
}

const saintsFixture = `{
	"10-04": [{"name": "Saint Francis of Assisi", "description": "Founder of the Franciscans", "patronage": ["animals", "ecology"]}],
	"01-28": [{"name": "Saint Thomas Aquinas", "title": "Doctor of the Church", "description": "Dominican theologian"}]
}`

func TestNewSaintsIndex(t *testing.T) {
	index, err := NewSaintsIndex(writeDataset(t, saintsFixture))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	saints, err := index.ForDay("10-04")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(saints) != 1 {
		t.Fatalf("Expected 1 saint, got %d", len(saints))
	}
	if saints[0].Name != "Saint Francis of Assisi" {
		t.Errorf("Unexpected saint: %s", saints[0].Name)
	}
}

func TestNewSaintsIndexMissingFile(t *testing.T) {
	if _, err := NewSaintsIndex(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestNewSaintsIndexInvalidDayKey(t *testing.T) {
	if _, err := NewSaintsIndex(writeDataset(t, `{"13-99": []}`)); err == nil {
		t.Error("Expected error for invalid day key")
	}
}

func TestSaintsForDate(t *testing.T) {
	index, err := NewSaintsIndex(writeDataset(t, saintsFixture))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	saints := index.ForDate(time.Date(2026, 1, 28, 9, 0, 0, 0, time.UTC))
	if len(saints) != 1 || saints[0].Name != "Saint Thomas Aquinas" {
		t.Errorf("Unexpected saints for 01-28: %+v", saints)
	}

	if got := index.ForDate(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)); len(got) != 0 {
		t.Errorf("Expected no saints for 02-02, got %+v", got)
	}
}

func TestSaintsForDayRejectsBadKey(t *testing.T) {
	index, err := NewSaintsIndex(writeDataset(t, saintsFixture))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, day := range []string{"13-01", "00-00", "October 4", ""} {
		if _, err := index.ForDay(day); err == nil {
			t.Errorf("Expected error for day key %q", day)
		}
	}
}
