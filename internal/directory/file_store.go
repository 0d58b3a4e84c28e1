package directory

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"centring-backend/internal/models"
)

// FileStore keeps the directory blob in a single JSON file. It is the
// default backend and the fallback when Redis is unavailable.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) ([]models.DirectoryEntry, error) {
	blob, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.DirectoryEntry{}, nil
		}
		return nil, err
	}
	return decodeEntries(blob)
}

func (s *FileStore) Save(ctx context.Context, entries []models.DirectoryEntry) error {
	blob, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write cannot corrupt the blob.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
