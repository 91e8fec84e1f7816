// Package history keeps the bounded, most-recent-first list of free-text
// searches used for autocomplete suggestions. Persistence is best effort:
// a missing or broken backend degrades to an empty history, never an error
// surfaced to the caller.
package history

import (
	"context"
	"strings"
)

// DefaultLimit is the number of entries retained when none is configured.
const DefaultLimit = 10

// Store persists the per-owner search history.
type Store interface {
	// Record remembers a confirmed query for the owner. Empty queries and
	// case-insensitive duplicates are ignored; the list is truncated to the
	// configured limit.
	Record(ctx context.Context, owner, query string)
	// Suggest matches the in-progress partial against the owner's history.
	Suggest(ctx context.Context, owner, partial string) []string
}

// push prepends query to entries, dropping any case-insensitive duplicate
// and truncating to limit. Returns entries unchanged when query is empty.
func push(entries []string, query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	lowered := strings.ToLower(query)
	next := make([]string, 0, len(entries)+1)
	next = append(next, query)
	for _, entry := range entries {
		if strings.ToLower(entry) == lowered {
			continue
		}
		next = append(next, entry)
	}

	if limit > 0 && len(next) > limit {
		next = next[:limit]
	}
	return next
}

// match returns the entries containing partial (case-insensitive), in stored
// order. When partial is non-empty and has no case-insensitive exact match
// among the entries, partial itself leads the list so the user always sees
// what they typed as the first option.
func match(entries []string, partial string) []string {
	normalized := strings.ToLower(strings.TrimSpace(partial))

	matched := make([]string, 0, len(entries))
	exact := false
	for _, entry := range entries {
		lowered := strings.ToLower(entry)
		if strings.Contains(lowered, normalized) {
			matched = append(matched, entry)
		}
		if lowered == normalized {
			exact = true
		}
	}

	if partial != "" && !exact {
		matched = append([]string{partial}, matched...)
	}
	return matched
}
