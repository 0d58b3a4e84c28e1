package recordstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"centring-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestList(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode([]*models.TransactionRecord{
			{ID: "a1", Name: "Raj", PhoneNo: "9876543210", Date: "2025-05-14", Product: "Cement", PaidAmount: 500, PaidStatus: "Pending"},
		})
	})

	records, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Raj", records[0].Name)
	assert.Equal(t, 500.0, records[0].PaidAmount)
}

func TestCreateAssignsID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var rec models.TransactionRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		assert.Empty(t, rec.ID)

		rec.ID = "new-id"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rec)
	})

	created, err := client.Create(context.Background(), &models.TransactionRecord{Name: "Raj", PhoneNo: "0", Product: "Cement"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
}

func TestUpdateHitsIDPath(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/abc", r.URL.Path)
		json.NewEncoder(w).Encode(&models.TransactionRecord{ID: "abc", Name: "Kumar"})
	})

	updated, err := client.Update(context.Background(), "abc", &models.TransactionRecord{Name: "Kumar"})
	require.NoError(t, err)
	assert.Equal(t, "abc", updated.ID)
}

func TestDelete(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/abc", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.Delete(context.Background(), "abc"))
}

func TestServerMessageSurfacesVerbatim(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "phone number already in use"})
	})

	_, err := client.Create(context.Background(), &models.TransactionRecord{})
	require.Error(t, err)
	assert.Equal(t, "phone number already in use", err.Error())
}

func TestGenericErrorWithoutMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
