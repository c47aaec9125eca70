// Package fs provides a file-based implementation of skim.HistoryStore.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/skim"
)

// Ensure HistoryStore implements skim.HistoryStore at compile time.
var _ skim.HistoryStore = (*HistoryStore)(nil)

// HistoryStore persists the local history list as a single JSON file.
//
// History is non-critical cache state, so both operations follow an explicit
// swallow-errors policy: Load treats any read or parse failure as an empty
// list, and Save failures are silently discarded. Concurrent load-modify-save
// sequences are last-writer-wins; no locking is attempted.
type HistoryStore struct {
	path string
}

// NewHistoryStore creates a HistoryStore backed by the file at path.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Load reads the stored history. Absent or corrupt storage yields an empty list.
func (s *HistoryStore) Load(_ context.Context) []*skim.Summary {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var entries []*skim.Summary
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// Save writes the history best-effort.
func (s *HistoryStore) Save(_ context.Context, entries []*skim.Summary) {
	if entries == nil {
		entries = []*skim.Summary{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0644)
}
