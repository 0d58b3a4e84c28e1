package services

import (
	"context"
	"errors"
	"strings"

	"centring-backend/internal/directory"
	"centring-backend/internal/models"
)

var (
	ErrDirectoryFieldsRequired = errors.New("name and phone number are required")
	ErrDirectoryInvalidPhone   = errors.New("invalid phone number: it must be 10 digits and cannot start with 0")
	ErrDirectoryPhoneExists    = errors.New("phone number already exists")
)

// DirectoryService applies the directory rules over a Store. Every
// operation reads the full stored sequence and writes it back whole.
type DirectoryService struct {
	Store directory.Store
}

func NewDirectoryService(store directory.Store) *DirectoryService {
	return &DirectoryService{Store: store}
}

// Add appends a new entry. The phone must satisfy the strict directory
// rule and must not exist anywhere in the stored sequence, including
// invalid-format legacy entries (first-writer-wins per phone number).
func (s *DirectoryService) Add(ctx context.Context, name, phone string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return ErrDirectoryFieldsRequired
	}
	if !models.ValidDirectoryPhone(phone) {
		return ErrDirectoryInvalidPhone
	}

	entries, err := s.Store.Load(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.PhoneNo == phone {
			return ErrDirectoryPhoneExists
		}
	}

	entries = append(entries, models.DirectoryEntry{Name: name, PhoneNo: phone})
	return s.Store.Save(ctx, entries)
}

// AddIfAbsent is the opportunistic write-through from a successful entry
// form submission. The raw phone value is stored as-is; the strict
// 10-digit rule deliberately does not apply here, so placeholder values
// land in storage and are filtered out at display time. A phone already
// present anywhere in the sequence is silently skipped.
func (s *DirectoryService) AddIfAbsent(ctx context.Context, name, phone string) error {
	entries, err := s.Store.Load(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.PhoneNo == phone {
			return nil
		}
	}

	entries = append(entries, models.DirectoryEntry{Name: name, PhoneNo: phone})
	return s.Store.Save(ctx, entries)
}

// List returns display entries: deduplicated by phone (first occurrence
// wins), restricted to valid phone numbers, then matched case-insensitively
// against the search term on name or phone.
func (s *DirectoryService) List(ctx context.Context, search string) ([]models.DirectoryEntry, error) {
	entries, err := s.Store.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	result := []models.DirectoryEntry{}
	term := strings.ToLower(search)

	for _, e := range entries {
		if !models.ValidDirectoryPhone(e.PhoneNo) || seen[e.PhoneNo] {
			continue
		}
		seen[e.PhoneNo] = true

		if term == "" ||
			strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(e.PhoneNo, search) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Update replaces the name/phone of every stored entry keyed by the
// original phone number. The new phone must satisfy the strict rule.
// It does not check the new phone for collision with a different
// existing entry; only Add enforces uniqueness.
func (s *DirectoryService) Update(ctx context.Context, originalPhone, name, phone string) error {
	if !models.ValidDirectoryPhone(phone) {
		return ErrDirectoryInvalidPhone
	}

	entries, err := s.Store.Load(ctx)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e.PhoneNo == originalPhone {
			entries[i] = models.DirectoryEntry{Name: name, PhoneNo: phone}
		}
	}
	return s.Store.Save(ctx, entries)
}

// Delete removes every stored entry with the given phone number.
func (s *DirectoryService) Delete(ctx context.Context, phone string) error {
	entries, err := s.Store.Load(ctx)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.PhoneNo != phone {
			kept = append(kept, e)
		}
	}
	return s.Store.Save(ctx, kept)
}
