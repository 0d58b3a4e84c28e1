package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"centring-backend/internal/models"
	"centring-backend/internal/timeutil"
)

var (
	ErrNoSelection      = errors.New("no items selected for deletion")
	ErrNoMonthSelection = errors.New("no entries from the selected month to delete")
	ErrBulkDeleteFailed = errors.New("error deleting entries, please try again")
)

// StoreClient is the record store contract the service depends on; the
// concrete implementation lives in internal/recordstore.
type StoreClient interface {
	List(ctx context.Context) ([]*models.TransactionRecord, error)
	Create(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error)
	Update(ctx context.Context, id string, record *models.TransactionRecord) (*models.TransactionRecord, error)
	Delete(ctx context.Context, id string) error
}

// RecordFilter is the conjunction of the listing view's independent
// filters. Zero values ("", "all") are identities.
type RecordFilter struct {
	Search     string
	PaidStatus string // "all", "paid", "pending"
	Returned   string // "all", "returned", "notReturned"
	Month      string // "" / "all", or "1".."12"
}

// RecordService owns the shared record snapshot: the one in-memory copy
// of the store's collection that the listing, summary and export views
// read. Every completion path reloads the whole collection instead of
// patching it, so ordering among concurrent completions never matters.
type RecordService struct {
	Client    StoreClient
	Directory *DirectoryService

	mu      sync.RWMutex
	records []*models.TransactionRecord
}

func NewRecordService(client StoreClient, dir *DirectoryService) *RecordService {
	return &RecordService{Client: client, Directory: dir}
}

// Refresh replaces the snapshot with the store's current collection.
func (s *RecordService) Refresh(ctx context.Context) error {
	records, err := s.Client.List(ctx)
	if err != nil {
		return err
	}
	if records == nil {
		records = []*models.TransactionRecord{}
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

// Records returns the current snapshot. The slice is shared read-only;
// filters copy rather than reorder.
func (s *RecordService) Records() []*models.TransactionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// List reloads the collection and applies the filter conjunction.
func (s *RecordService) List(ctx context.Context, f RecordFilter) ([]*models.TransactionRecord, error) {
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return FilterRecords(s.Records(), f), nil
}

// FilterRecords applies the filter conjunction as a pure, order-preserving
// predicate over the given records.
func FilterRecords(records []*models.TransactionRecord, f RecordFilter) []*models.TransactionRecord {
	term := strings.ToLower(f.Search)

	matched := []*models.TransactionRecord{}
	for _, r := range records {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Name), term) &&
			!strings.Contains(strings.ToLower(r.PhoneNo), term) {
			continue
		}
		if f.PaidStatus != "" && f.PaidStatus != "all" &&
			!strings.EqualFold(r.PaidStatus, f.PaidStatus) {
			continue
		}
		switch f.Returned {
		case "returned":
			if !r.Returned {
				continue
			}
		case "notReturned":
			if r.Returned {
				continue
			}
		}
		if f.Month != "" && f.Month != "all" {
			if strconv.Itoa(timeutil.Month(r.Date)) != f.Month {
				continue
			}
		}
		matched = append(matched, r)
	}
	return matched
}

// Create validates the entry form and submits a new record. On success
// the name/phone pair is written through to the directory; write-through
// failure is logged, never surfaced, because the record already exists.
func (s *RecordService) Create(ctx context.Context, req *models.RecordRequest) (*models.TransactionRecord, map[string]string, error) {
	req.ApplyDefaults()
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	created, err := s.Client.Create(ctx, req.ToRecord())
	if err != nil {
		return nil, nil, err
	}

	if err := s.Directory.AddIfAbsent(ctx, created.Name, created.PhoneNo); err != nil {
		log.Printf("[Records] Directory write-through failed: %v", err)
	}
	return created, nil, nil
}

// Update validates the entry form and replaces the record with the given
// id, with the same directory write-through as Create.
func (s *RecordService) Update(ctx context.Context, id string, req *models.RecordRequest) (*models.TransactionRecord, map[string]string, error) {
	req.ApplyDefaults()
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	updated, err := s.Client.Update(ctx, id, req.ToRecord())
	if err != nil {
		return nil, nil, err
	}

	if err := s.Directory.AddIfAbsent(ctx, updated.Name, updated.PhoneNo); err != nil {
		log.Printf("[Records] Directory write-through failed: %v", err)
	}
	return updated, nil, nil
}

// ProposeBulkDelete computes which of the selected ids would actually be
// deleted: the intersection of the selection with records falling in the
// chosen month. It performs no deletion, so the caller can confirm the
// affected count first. An empty snapshot is loaded first, so a propose
// in a fresh process sees the store's real collection.
func (s *RecordService) ProposeBulkDelete(ctx context.Context, ids []string, month string) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrNoSelection
	}

	if len(s.Records()) == 0 {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	byID := make(map[string]*models.TransactionRecord)
	for _, r := range s.Records() {
		byID[r.ID] = r
	}

	var affected []string
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			continue
		}
		if strconv.Itoa(timeutil.Month(r.Date)) == month {
			affected = append(affected, id)
		}
	}
	if len(affected) == 0 {
		return nil, ErrNoMonthSelection
	}
	return affected, nil
}

// ConfirmBulkDelete issues one delete per id concurrently and waits for
// all to settle. Every delete runs to completion even when a sibling
// fails. Partial failure is not distinguished per item: any failure
// surfaces one generic error, and the snapshot is reloaded either way.
func (s *RecordService) ConfirmBulkDelete(ctx context.Context, ids []string) error {
	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			return s.Client.Delete(ctx, id)
		})
	}
	deleteErr := g.Wait()

	if err := s.Refresh(ctx); err != nil {
		log.Printf("[Records] Reload after bulk delete failed: %v", err)
	}
	if deleteErr != nil {
		log.Printf("[Records] Bulk delete failed: %v", deleteErr)
		return ErrBulkDeleteFailed
	}
	return nil
}

// Delete removes a single record and reloads the snapshot on success.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	if err := s.Client.Delete(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
