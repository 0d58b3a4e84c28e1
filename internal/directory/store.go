// Package directory persists the name/phone directory: one JSON-serialized
// array of entries under a single fixed storage key, read wholesale on every
// view and written back wholesale on every mutation.
package directory

import (
	"context"
	"encoding/json"
	"fmt"

	"centring-backend/internal/models"
)

// Store is the persistence contract for the directory blob. Backends only
// move the blob; all directory rules live in the service layer.
type Store interface {
	// Load reads the full stored sequence. A missing blob is an empty
	// directory, not an error. A corrupt blob returns *ParseError.
	Load(ctx context.Context) ([]models.DirectoryEntry, error)

	// Save replaces the full stored sequence.
	Save(ctx context.Context, entries []models.DirectoryEntry) error
}

// ParseError marks a blob that exists but cannot be decoded. Callers are
// expected to surface it and continue with an empty directory.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("directory data corrupt: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func encodeEntries(entries []models.DirectoryEntry) ([]byte, error) {
	if entries == nil {
		entries = []models.DirectoryEntry{}
	}
	return json.Marshal(entries)
}

func decodeEntries(blob []byte) ([]models.DirectoryEntry, error) {
	if len(blob) == 0 {
		return []models.DirectoryEntry{}, nil
	}
	var entries []models.DirectoryEntry
	if err := json.Unmarshal(blob, &entries); err != nil {
		return nil, &ParseError{Err: err}
	}
	return entries, nil
}
