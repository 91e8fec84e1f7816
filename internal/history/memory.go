package history

import (
	"context"
	"sync"
)

// MemoryStore keeps search history in process memory. Used when no Redis URL
// is configured and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	limit   int
	entries map[string][]string
}

// NewMemoryStore creates an in-memory store with the given entry limit.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &MemoryStore{
		limit:   limit,
		entries: make(map[string][]string),
	}
}

// Record implements Store.
func (s *MemoryStore) Record(_ context.Context, owner, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[owner] = push(s.entries[owner], query, s.limit)
}

// Suggest implements Store.
func (s *MemoryStore) Suggest(_ context.Context, owner, partial string) []string {
	s.mu.Lock()
	entries := append([]string(nil), s.entries[owner]...)
	s.mu.Unlock()
	return match(entries, partial)
}

var _ Store = (*MemoryStore)(nil)
