package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"centring-backend/internal/models"
	"centring-backend/internal/services"

	"github.com/gorilla/mux"
)

type RecordHandler struct {
	Service *services.RecordService
}

func NewRecordHandler(s *services.RecordService) *RecordHandler {
	return &RecordHandler{Service: s}
}

// filterFromQuery maps the listing query parameters onto a record
// filter. Exports reuse it so downloads match the visible table.
func filterFromQuery(r *http.Request) services.RecordFilter {
	q := r.URL.Query()
	return services.RecordFilter{
		Search:     q.Get("search"),
		PaidStatus: q.Get("paidStatus"),
		Returned:   q.Get("returned"),
		Month:      q.Get("month"),
	}
}

// ListRecords returns the stored records, newest data straight from the
// record store, narrowed by the optional filter query parameters.
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.List(context.Background(), filterFromQuery(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req models.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, fieldErrs, err := h.Service.Create(context.Background(), &req)
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (h *RecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, fieldErrs, err := h.Service.Update(context.Background(), id, &req)
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(context.Background(), id); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type bulkDeleteRequest struct {
	IDs   []string `json:"ids"`
	Month string   `json:"month"`
}

// ProposeBulkDelete validates a pending bulk deletion and returns the ids
// that would actually be removed. Nothing is deleted yet.
func (h *RecordHandler) ProposeBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ids, err := h.Service.ProposeBulkDelete(context.Background(), req.IDs, req.Month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ids":   ids,
		"count": len(ids),
	})
}

func (h *RecordHandler) ConfirmBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.ConfirmBulkDelete(context.Background(), req.IDs); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeFieldErrors(w http.ResponseWriter, fieldErrs map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{"errors": fieldErrs})
}
