package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"centring-backend/internal/directory"
	"centring-backend/internal/services"

	"github.com/gorilla/mux"
)

type DirectoryHandler struct {
	Service *services.DirectoryService
}

func NewDirectoryHandler(s *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: s}
}

type directoryEntryRequest struct {
	Name          string `json:"name"`
	PhoneNo       string `json:"phoneNo"`
	OriginalPhone string `json:"originalPhone,omitempty"`
}

// ListEntries returns the deduplicated directory, optionally narrowed by
// a search term. A corrupt stored blob is reported as a warning alongside
// an empty listing instead of failing the view.
func (h *DirectoryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	entries, err := h.Service.List(context.Background(), search)
	if err != nil {
		var parseErr *directory.ParseError
		if errors.As(err, &parseErr) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"entries": []interface{}{},
				"warning": "Error parsing stored contact data",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"entries": entries})
}

func (h *DirectoryHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req directoryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.Add(context.Background(), req.Name, req.PhoneNo); err != nil {
		http.Error(w, err.Error(), directoryErrorStatus(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *DirectoryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req directoryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.OriginalPhone == "" {
		http.Error(w, "originalPhone is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Update(context.Background(), req.OriginalPhone, req.Name, req.PhoneNo); err != nil {
		http.Error(w, err.Error(), directoryErrorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DirectoryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	if err := h.Service.Delete(context.Background(), phone); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func directoryErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrDirectoryFieldsRequired),
		errors.Is(err, services.ErrDirectoryInvalidPhone):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDirectoryPhoneExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
