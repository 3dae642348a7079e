package handlers

import (
	"net/http"
	"time"

	"verbum-app/internal/content"
)

// SaintsResponse lists the saints commemorated on a day
type SaintsResponse struct {
	Day    string          `json:"day"`
	Saints []content.Saint `json:"saints"`
}

// ReadingsResponse carries the lectionary entry for a day
type ReadingsResponse struct {
	Day      string                 `json:"day"`
	Readings *content.DailyReadings `json:"readings"`
}

// ContentHandlers serves the liturgical content endpoints
type ContentHandlers struct {
	saints     *content.SaintsIndex
	lectionary *content.Lectionary
}

// NewContentHandlers creates new ContentHandlers
func NewContentHandlers(saints *content.SaintsIndex, lectionary *content.Lectionary) *ContentHandlers {
	return &ContentHandlers{
		saints:     saints,
		lectionary: lectionary,
	}
}

// SaintsToday returns the saints for the current date
func (h *ContentHandlers) SaintsToday(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	writeJSON(w, http.StatusOK, SaintsResponse{
		Day:    now.Format("01-02"),
		Saints: h.saints.ForDate(now),
	})
}

// SaintsByDay returns the saints for a "MM-DD" day
func (h *ContentHandlers) SaintsByDay(w http.ResponseWriter, r *http.Request) {
	day := r.PathValue("day")

	saints, err := h.saints.ForDay(day)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(saints) == 0 {
		writeError(w, http.StatusNotFound, "no saints recorded for this day")
		return
	}

	writeJSON(w, http.StatusOK, SaintsResponse{Day: day, Saints: saints})
}

// ReadingsByDay returns the lectionary entry for a "MM-DD" day
func (h *ContentHandlers) ReadingsByDay(w http.ResponseWriter, r *http.Request) {
	day := r.PathValue("day")

	readings, err := h.lectionary.ForDay(day)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if readings == nil {
		writeError(w, http.StatusNotFound, "no readings recorded for this day")
		return
	}

	writeJSON(w, http.StatusOK, ReadingsResponse{Day: day, Readings: readings})
}
