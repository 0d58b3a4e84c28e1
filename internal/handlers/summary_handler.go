package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"centring-backend/internal/services"
)

type SummaryHandler struct {
	Records *services.RecordService
	Service *services.SummaryService
}

func NewSummaryHandler(records *services.RecordService, s *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{Records: records, Service: s}
}

// Compute sums the paid amounts for the requested month and year. Both
// parameters are required; omitting either yields a validation error
// rather than a partial sum.
func (h *SummaryHandler) Compute(w http.ResponseWriter, r *http.Request) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	if err := h.Records.Refresh(context.Background()); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	total, err := h.Service.Compute(month, year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total":   total,
		"display": services.DisplayTotal(total),
	})
}

// Last returns the most recently computed total, so the calculation
// view can restore its display after a navigation.
func (h *SummaryHandler) Last(w http.ResponseWriter, r *http.Request) {
	total := h.Service.LastTotal()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total":   total,
		"display": services.DisplayTotal(total),
	})
}

// Years returns the selectable year window for the summary form.
func (h *SummaryHandler) Years(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"years": h.Service.YearWindow(),
	})
}
