package clickhouse

import (
	"context"
	"fmt"
	"time"

	"verbum-app/internal/config"
	"verbum-app/internal/logger"

	"github.com/ClickHouse/clickhouse-go/v2"
)

const eventsTableDDL = `
CREATE TABLE IF NOT EXISTS analytics_events (
	id UUID,
	session_id String,
	chat_id String,
	event_type LowCardinality(String),
	event_data String,
	timestamp DateTime64(3, 'UTC')
) ENGINE = MergeTree()
ORDER BY (timestamp, event_type)
`

// EventDB holds the ClickHouse connection backing the analytics event store
type EventDB struct {
	conn clickhouse.Conn
}

// NewEventDB opens a native-protocol ClickHouse connection and ensures the
// events table exists.
func NewEventDB(chConfig config.ClickHouseConfig) (*EventDB, error) {
	options := &clickhouse.Options{
		Addr: []string{chConfig.Addr()},
		Auth: clickhouse.Auth{
			Database: chConfig.Name,
			Username: chConfig.User,
			Password: chConfig.Password,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
		DialTimeout: 5 * time.Second,
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	if err := conn.Exec(ctx, eventsTableDDL); err != nil {
		return nil, fmt.Errorf("failed to ensure analytics_events table: %w", err)
	}

	logger.Log.Info("Successfully connected to ClickHouse")
	return &EventDB{conn: conn}, nil
}

// Close closes the ClickHouse connection
func (e *EventDB) Close() error {
	if e.conn != nil {
		return e.conn.Close()
	}
	return nil
}
