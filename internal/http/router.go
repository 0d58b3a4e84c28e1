package http

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"centring-backend/internal/handlers"
	"centring-backend/static"
)

func NewRouter(
	recordHandler *handlers.RecordHandler,
	directoryHandler *handlers.DirectoryHandler,
	summaryHandler *handlers.SummaryHandler,
	exportHandler *handlers.ExportHandler,
	authHandler *handlers.AuthHandler,
	pageHandler *handlers.PageHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Serve static files from embedded filesystem
	staticFS, _ := fs.Sub(static.FS, ".")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// HTML pages. All pages load without server-side auth; the login view
	// does not gate the data views.
	r.HandleFunc("/", pageHandler.EntryPage).Methods("GET")
	r.HandleFunc("/datas", pageHandler.DatasPage).Methods("GET")
	r.HandleFunc("/login", pageHandler.LoginPage).Methods("GET")
	r.HandleFunc("/phoneno", pageHandler.PhonePage).Methods("GET")
	r.HandleFunc("/calculation", pageHandler.CalculationPage).Methods("GET")
	r.HandleFunc("/update", pageHandler.UpdatePage).Methods("GET")
	r.HandleFunc("/my-profile", pageHandler.ProfilePage).Methods("GET")

	// API routes - Authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// API routes - Records
	recordsAPI := r.PathPrefix("/api/records").Subrouter()
	recordsAPI.HandleFunc("", recordHandler.ListRecords).Methods("GET")
	recordsAPI.HandleFunc("", recordHandler.CreateRecord).Methods("POST")
	recordsAPI.HandleFunc("/bulk-delete/propose", recordHandler.ProposeBulkDelete).Methods("POST")
	recordsAPI.HandleFunc("/bulk-delete/confirm", recordHandler.ConfirmBulkDelete).Methods("POST")
	recordsAPI.HandleFunc("/{id}", recordHandler.UpdateRecord).Methods("PUT")
	recordsAPI.HandleFunc("/{id}", recordHandler.DeleteRecord).Methods("DELETE")

	// API routes - Phone directory
	directoryAPI := r.PathPrefix("/api/directory").Subrouter()
	directoryAPI.HandleFunc("", directoryHandler.ListEntries).Methods("GET")
	directoryAPI.HandleFunc("", directoryHandler.AddEntry).Methods("POST")
	directoryAPI.HandleFunc("", directoryHandler.UpdateEntry).Methods("PUT")
	directoryAPI.HandleFunc("/{phone}", directoryHandler.DeleteEntry).Methods("DELETE")

	// API routes - Monthly totals
	r.HandleFunc("/api/summary", summaryHandler.Compute).Methods("GET")
	r.HandleFunc("/api/summary/years", summaryHandler.Years).Methods("GET")
	r.HandleFunc("/api/summary/last", summaryHandler.Last).Methods("GET")

	// API routes - Exports
	r.HandleFunc("/api/export/csv", exportHandler.CSV).Methods("GET")
	r.HandleFunc("/api/export/pdf", exportHandler.PDF).Methods("GET")

	// Health check endpoints
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
