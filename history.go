package skim

import "context"

// HistoryStore persists the local recency list of past summaries.
//
// History is a convenience cache, not a correctness-critical store: Load
// treats absent or corrupt storage as an empty list and Save swallows write
// failures. Concurrent load-modify-save sequences are last-writer-wins.
type HistoryStore interface {
	// Load reads the stored history. Never fails; any read or parse
	// problem yields an empty list.
	Load(ctx context.Context) []*Summary

	// Save writes the history best-effort. Failures are not surfaced.
	Save(ctx context.Context, entries []*Summary)
}

// UpsertHistory removes any existing entry with the same URL and prepends
// entry, so entry is always at index 0 and at most one entry per URL exists.
// The input slice is not modified.
func UpsertHistory(entries []*Summary, entry *Summary) []*Summary {
	result := make([]*Summary, 0, len(entries)+1)
	result = append(result, entry)
	for _, e := range entries {
		if e.URL == entry.URL {
			continue
		}
		result = append(result, e)
	}
	return result
}

// RemoveHistory filters out entries matching both id and url, preserving the
// relative order of the rest. The input slice is not modified.
func RemoveHistory(entries []*Summary, id, url string) []*Summary {
	result := make([]*Summary, 0, len(entries))
	for _, e := range entries {
		if e.ID == id && e.URL == url {
			continue
		}
		result = append(result, e)
	}
	return result
}
