package content

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DailyReadings is the lectionary entry for one calendar day
type DailyReadings struct {
	Season        string `json:"season,omitempty"`
	FirstReading  string `json:"first_reading"`
	Psalm         string `json:"psalm"`
	SecondReading string `json:"second_reading,omitempty"`
	Gospel        string `json:"gospel"`
}

// Lectionary holds the static readings dataset keyed by day ("MM-DD")
type Lectionary struct {
	byDay map[string]DailyReadings
}

// NewLectionary loads the readings dataset from a file
func NewLectionary(dataPath string) (*Lectionary, error) {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, err
	}

	var byDay map[string]DailyReadings
	if err := json.Unmarshal(data, &byDay); err != nil {
		return nil, err
	}

	for day, r := range byDay {
		if err := validateDayKey(day); err != nil {
			return nil, fmt.Errorf("readings dataset: %w", err)
		}
		if r.Gospel == "" {
			return nil, fmt.Errorf("readings dataset: day %s has no gospel reading", day)
		}
	}

	return &Lectionary{byDay: byDay}, nil
}

// ForDate returns the readings for the given date, if the dataset has them
func (l *Lectionary) ForDate(t time.Time) (*DailyReadings, bool) {
	r, ok := l.byDay[t.Format("01-02")]
	if !ok {
		return nil, false
	}
	return &r, true
}

// ForDay returns the readings for a "MM-DD" day key
func (l *Lectionary) ForDay(day string) (*DailyReadings, error) {
	if err := validateDayKey(day); err != nil {
		return nil, err
	}
	r, ok := l.byDay[day]
	if !ok {
		return nil, nil
	}
	return &r, nil
}
