package handlers

import (
	"context"
	"fmt"
	"net/http"

	"centring-backend/internal/services"
)

type ExportHandler struct {
	Records *services.RecordService
	Service *services.ExportService
}

func NewExportHandler(records *services.RecordService, s *services.ExportService) *ExportHandler {
	return &ExportHandler{Records: records, Service: s}
}

// CSV downloads the record listing as a spreadsheet. The same filter
// query parameters as the listing apply, so the download matches what
// the table shows.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.Records.List(context.Background(), filterFromQuery(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	data := h.Service.CSV(records)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", services.CSVFileName))
	w.Write(data)
}

// PDF downloads the filtered record listing as a printable statement.
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	records, err := h.Records.List(context.Background(), filterFromQuery(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	data, err := h.Service.PDF(records, "AKR CENTRING")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", services.PDFFileName))
	w.Write(data)
}
