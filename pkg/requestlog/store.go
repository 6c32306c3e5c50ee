package requestlog

import "sync"

// Store is a thread-safe, append-only in-memory log of request entries.
//
// A max size of zero or less means unbounded. When bounded, the oldest
// entries are dropped once the limit is reached.
type Store struct {
	mu      sync.RWMutex
	entries []*Entry
	max     int
}

// NewStore creates a new Store. max <= 0 means unbounded.
func NewStore(max int) *Store {
	return &Store{max: max}
}

// Append adds an entry to the log.
func (s *Store) Append(e *Entry) {
	if e == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if s.max > 0 && len(s.entries) > s.max {
		s.entries = s.entries[len(s.entries)-s.max:]
	}
}

// List returns all entries in arrival order.
func (s *Store) List() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Count returns the number of stored entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
