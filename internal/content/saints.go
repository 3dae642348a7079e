package content

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Saint is one entry of the saints-of-the-day dataset
type Saint struct {
	Name        string   `json:"name"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description"`
	Patronage   []string `json:"patronage,omitempty"`
}

// SaintsIndex holds the static saints dataset keyed by feast day ("MM-DD")
type SaintsIndex struct {
	byDay map[string][]Saint
}

// NewSaintsIndex loads the saints dataset from a file
func NewSaintsIndex(dataPath string) (*SaintsIndex, error) {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, err
	}

	var byDay map[string][]Saint
	if err := json.Unmarshal(data, &byDay); err != nil {
		return nil, err
	}

	for day := range byDay {
		if err := validateDayKey(day); err != nil {
			return nil, fmt.Errorf("saints dataset: %w", err)
		}
	}

	return &SaintsIndex{byDay: byDay}, nil
}

// ForDate returns the saints commemorated on the given date
func (s *SaintsIndex) ForDate(t time.Time) []Saint {
	return s.byDay[t.Format("01-02")]
}

// ForDay returns the saints for a "MM-DD" day key
func (s *SaintsIndex) ForDay(day string) ([]Saint, error) {
	if err := validateDayKey(day); err != nil {
		return nil, err
	}
	return s.byDay[day], nil
}

// validateDayKey checks a "MM-DD" calendar day key
func validateDayKey(day string) error {
	if _, err := time.Parse("01-02", day); err != nil {
		return fmt.Errorf("invalid day %q: must be MM-DD", day)
	}
	return nil
}
