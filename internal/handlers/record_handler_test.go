package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"centring-backend/internal/directory"
	"centring-backend/internal/models"
	"centring-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is an in-memory record store standing in for the external
// REST endpoint.
type stubStore struct {
	mu      sync.Mutex
	records []*models.TransactionRecord
	nextID  int
}

func (s *stubStore) List(ctx context.Context) ([]*models.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.TransactionRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *stubStore) Create(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	created := *record
	created.ID = fmt.Sprintf("id-%d", s.nextID)
	s.records = append(s.records, &created)
	return &created, nil
}

func (s *stubStore) Update(ctx context.Context, id string, record *models.TransactionRecord) (*models.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			updated := *record
			updated.ID = id
			s.records[i] = &updated
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

func (s *stubStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	return nil
}

func newTestRouter(t *testing.T, store *stubStore) *mux.Router {
	t.Helper()

	dirStore := directory.NewFileStore(filepath.Join(t.TempDir(), "directory.json"))
	directoryService := services.NewDirectoryService(dirStore)
	recordService := services.NewRecordService(store, directoryService)

	recordHandler := NewRecordHandler(recordService)
	directoryHandler := NewDirectoryHandler(directoryService)

	r := mux.NewRouter()
	r.HandleFunc("/api/records", recordHandler.ListRecords).Methods("GET")
	r.HandleFunc("/api/records", recordHandler.CreateRecord).Methods("POST")
	r.HandleFunc("/api/records/bulk-delete/propose", recordHandler.ProposeBulkDelete).Methods("POST")
	r.HandleFunc("/api/records/bulk-delete/confirm", recordHandler.ConfirmBulkDelete).Methods("POST")
	r.HandleFunc("/api/records/{id}", recordHandler.UpdateRecord).Methods("PUT")
	r.HandleFunc("/api/records/{id}", recordHandler.DeleteRecord).Methods("DELETE")
	r.HandleFunc("/api/directory", directoryHandler.ListEntries).Methods("GET")
	r.HandleFunc("/api/directory", directoryHandler.AddEntry).Methods("POST")
	return r
}

func TestListRecordsAppliesFilters(t *testing.T) {
	store := &stubStore{records: []*models.TransactionRecord{
		{ID: "1", Name: "Raj", PhoneNo: "9876543210", Date: "2025-05-14", Product: "Cement", PaidAmount: 500, PaidStatus: "Paid"},
		{ID: "2", Name: "Kumar", PhoneNo: "8765432109", Date: "2025-06-20", Product: "Jack", PaidAmount: 250, PaidStatus: "Pending"},
	}}
	router := newTestRouter(t, store)

	req := httptest.NewRequest("GET", "/api/records?paidStatus=paid&month=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []*models.TransactionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Raj", got[0].Name)
}

func TestCreateRecordReturnsFieldErrors(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	body := `{"name":"","phoneNo":"12345","product":"","paidAmount":"abc"}`
	req := httptest.NewRequest("POST", "/api/records", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 4)
}

func TestCreateRecordReturnsCreated(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	body := `{"name":"Raj","phoneNo":"9876543210","product":"Cement","paidAmount":"500"}`
	req := httptest.NewRequest("POST", "/api/records", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.TransactionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, models.PaidStatusPending, got.PaidStatus)
	assert.NotEmpty(t, got.Date)
}

func TestProposeBulkDeleteRejectsEmptySelection(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	payload, _ := json.Marshal(map[string]interface{}{"ids": []string{}, "month": "5"})
	req := httptest.NewRequest("POST", "/api/records/bulk-delete/propose", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no items selected")
}

func TestBulkDeleteProposeThenConfirm(t *testing.T) {
	store := &stubStore{records: []*models.TransactionRecord{
		{ID: "1", Date: "2025-05-14", Name: "Raj", PhoneNo: "0", Product: "Cement"},
		{ID: "2", Date: "2025-06-20", Name: "Kumar", PhoneNo: "0", Product: "Jack"},
	}}
	router := newTestRouter(t, store)

	// Prime the snapshot
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/records", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	payload, _ := json.Marshal(map[string]interface{}{"ids": []string{"1", "2"}, "month": "5"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/records/bulk-delete/propose", bytes.NewReader(payload)))
	require.Equal(t, http.StatusOK, rec.Code)

	var proposal struct {
		IDs   []string `json:"ids"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &proposal))
	assert.Equal(t, []string{"1"}, proposal.IDs)
	assert.Equal(t, 1, proposal.Count)

	payload, _ = json.Marshal(map[string]interface{}{"ids": proposal.IDs})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/records/bulk-delete/confirm", bytes.NewReader(payload)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].ID)
}

func TestDeleteRecord(t *testing.T) {
	store := &stubStore{records: []*models.TransactionRecord{
		{ID: "1", Date: "2025-05-14", Name: "Raj", PhoneNo: "0", Product: "Cement"},
	}}
	router := newTestRouter(t, store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/records/1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDirectoryAddAndList(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	body := `{"name":"Raj","phoneNo":"9876543210"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/directory", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/directory?search=raj", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Entries []models.DirectoryEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "9876543210", resp.Entries[0].PhoneNo)
}

func TestDirectoryAddRejectsInvalidPhone(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	body := `{"name":"Raj","phoneNo":"0123456789"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/directory", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
