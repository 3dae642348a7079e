package handlers

import (
	"fmt"
	"net/http"
	"time"

	"verbum-app/internal/logger"
	"verbum-app/internal/repository/db"
	"verbum-app/internal/service/analytics"
)

// StatsHandlers serves the admin analytics aggregates
type StatsHandlers struct {
	analytics *analytics.AnalyticsService
}

// NewStatsHandlers creates new StatsHandlers
func NewStatsHandlers(service *analytics.AnalyticsService) *StatsHandlers {
	return &StatsHandlers{analytics: service}
}

// EventCounts returns bucketed event counts over a time window.
// Query params: interval (hour|day|week|month), start, end (RFC3339),
// event_type (optional filter). Window defaults to the last 7 days.
func (h *StatsHandlers) EventCounts(w http.ResponseWriter, r *http.Request) {
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = "day"
	}

	start, end, err := parseTimeWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	eventType := r.URL.Query().Get("event_type")

	buckets, err := h.analytics.EventCountsOverTime(r.Context(), interval, start, end, eventType)
	if err != nil {
		logger.Log.WithError(err).Error("Error querying event counts")
		writeError(w, http.StatusInternalServerError, "failed to query event counts")
		return
	}
	if buckets == nil {
		buckets = []db.EventCountBucket{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"interval": interval,
		"start":    start.Format(time.RFC3339),
		"end":      end.Format(time.RFC3339),
		"buckets":  buckets,
	})
}

// EventTypes returns per-event-type totals over a time window
func (h *StatsHandlers) EventTypes(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	counts, err := h.analytics.EventTypeCounts(r.Context(), start, end)
	if err != nil {
		logger.Log.WithError(err).Error("Error querying event type counts")
		writeError(w, http.StatusInternalServerError, "failed to query event type counts")
		return
	}
	if counts == nil {
		counts = []db.EventTypeCount{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"start":  start.Format(time.RFC3339),
		"end":    end.Format(time.RFC3339),
		"counts": counts,
	})
}

// parseTimeWindow reads start/end RFC3339 query params, defaulting to the
// last 7 days when absent
func parseTimeWindow(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -7)
	end := now

	if raw := r.URL.Query().Get("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start: must be RFC3339")
		}
		start = t
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end: must be RFC3339")
		}
		end = t
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end must be after start")
	}

	return start, end, nil
}
