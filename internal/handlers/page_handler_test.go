package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasPageCarriesSelectionControls(t *testing.T) {
	h := NewPageHandler()

	req := httptest.NewRequest(http.MethodGet, "/datas", nil)
	rec := httptest.NewRecorder()
	h.DatasPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="select-all"`)
	assert.Contains(t, body, `id="select-paid"`)
	assert.Contains(t, body, `id="bulk-delete"`)
}

func TestEntryPagePreFillsPlaceholderValues(t *testing.T) {
	h := NewPageHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.EntryPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="phoneNo"`)
	assert.Contains(t, body, `name="paidAmount"`)
	assert.Contains(t, body, `value="0"`)
}
