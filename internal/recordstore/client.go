// Package recordstore talks to the external transaction-record endpoint.
// The store owns all record persistence; this client holds no state and
// attempts every call exactly once (no retry, no backoff).
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"centring-backend/internal/metrics"
	"centring-backend/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a record store client. The timeout bounds every call
// so a hung store cannot wedge a handler indefinitely.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// storeError is the optional error body of a failed store response.
type storeError struct {
	Message string `json:"message"`
}

// List fetches the full record collection.
func (c *Client) List(ctx context.Context) ([]*models.TransactionRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	var records []*models.TransactionRecord
	if err := c.do(req, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create submits a record without an id and returns the stored record
// with the id the store assigned.
func (c *Client) Create(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error) {
	req, err := c.jsonRequest(ctx, http.MethodPost, c.baseURL, record)
	if err != nil {
		return nil, err
	}

	var created models.TransactionRecord
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the record with the given id.
func (c *Client) Update(ctx context.Context, id string, record *models.TransactionRecord) (*models.TransactionRecord, error) {
	req, err := c.jsonRequest(ctx, http.MethodPut, c.baseURL+"/"+id, record)
	if err != nil {
		return nil, err
	}

	var updated models.TransactionRecord
	if err := c.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) jsonRequest(ctx context.Context, method, url string, body interface{}) (*http.Request, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do executes one request. Non-2xx responses surface the server-provided
// message when present, else a generic failure string; the error is
// recoverable and the caller decides whether to re-trigger.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordStoreCallsTotal.WithLabelValues(req.Method, "error").Inc()
		return fmt.Errorf("record store unreachable: %w", err)
	}
	defer resp.Body.Close()

	outcome := "ok"
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = "error"
	}
	metrics.RecordStoreCallsTotal.WithLabelValues(req.Method, outcome).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("record store response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var se storeError
		if json.Unmarshal(body, &se) == nil && se.Message != "" {
			return fmt.Errorf("%s", se.Message)
		}
		return fmt.Errorf("record store request failed (status %d)", resp.StatusCode)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("record store response: %w", err)
	}
	return nil
}
