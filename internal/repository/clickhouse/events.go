package clickhouse

import (
	"context"
	"fmt"
	"time"

	"verbum-app/internal/repository/db"
)

// Ensure EventDB implements db.EventStore
var _ db.EventStore = (*EventDB)(nil)

var validIntervals = map[string]string{
	"hour":  "toStartOfHour",
	"day":   "toStartOfDay",
	"week":  "toStartOfWeek",
	"month": "toStartOfMonth",
}

// InsertEvent appends one immutable telemetry row. One event means one
// synchronous insert attempt: no batching, no retry.
func (e *EventDB) InsertEvent(ctx context.Context, event *db.AnalyticsEvent) error {
	query := `
	INSERT INTO analytics_events (id, session_id, chat_id, event_type, event_data, timestamp)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	payload := "{}"
	if len(event.EventData) > 0 {
		payload = string(event.EventData)
	}

	err := e.conn.Exec(ctx, query,
		event.ID,
		event.SessionID,
		event.ChatID,
		event.EventType,
		payload,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("error inserting analytics event: %w", err)
	}

	return nil
}

// EventCountsOverTime returns event counts bucketed by the given interval,
// optionally filtered to one event type.
func (e *EventDB) EventCountsOverTime(ctx context.Context, interval string, start, end time.Time, eventType string) ([]db.EventCountBucket, error) {
	bucketFn, ok := validIntervals[interval]
	if !ok {
		return nil, fmt.Errorf("invalid interval: %s", interval)
	}

	query := fmt.Sprintf(`
	SELECT %s(timestamp) AS time_bucket, count() AS total_events
	FROM analytics_events
	WHERE timestamp >= ? AND timestamp <= ?
	`, bucketFn)
	args := []interface{}{start, end}

	if eventType != "" {
		query += " AND event_type = ?"
		args = append(args, eventType)
	}
	query += " GROUP BY time_bucket ORDER BY time_bucket ASC"

	rows, err := e.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying event counts: %w", err)
	}
	defer rows.Close()

	var results []db.EventCountBucket
	for rows.Next() {
		var bucket db.EventCountBucket
		if err := rows.Scan(&bucket.Time, &bucket.Count); err != nil {
			return nil, fmt.Errorf("error scanning event count row: %w", err)
		}
		results = append(results, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during event count query: %w", err)
	}

	return results, nil
}

// EventTypeCounts returns total event counts per event type within a window
func (e *EventDB) EventTypeCounts(ctx context.Context, start, end time.Time) ([]db.EventTypeCount, error) {
	query := `
	SELECT event_type, count() AS total_events
	FROM analytics_events
	WHERE timestamp >= ? AND timestamp <= ?
	GROUP BY event_type
	ORDER BY total_events DESC
	`

	rows, err := e.conn.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying event type counts: %w", err)
	}
	defer rows.Close()

	var results []db.EventTypeCount
	for rows.Next() {
		var tc db.EventTypeCount
		if err := rows.Scan(&tc.EventType, &tc.Count); err != nil {
			return nil, fmt.Errorf("error scanning event type count row: %w", err)
		}
		results = append(results, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during event type count query: %w", err)
	}

	return results, nil
}
