package clickhouse

import (
	"context"
	"testing"
	"time"
)

func TestEventCountsOverTimeRejectsInvalidInterval(t *testing.T) {
	e := &EventDB{}

	start := time.Now().Add(-24 * time.Hour)
	end := time.Now()

	for _, interval := range []string{"", "minute", "year", "day; DROP TABLE"} {
		if _, err := e.EventCountsOverTime(context.Background(), interval, start, end, ""); err == nil {
			t.Errorf("Expected error for interval %q", interval)
		}
	}
}
