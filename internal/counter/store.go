// Package counter holds the shared in-memory count table.
package counter

import (
	"sync"

	"github.com/Zekorei/Keylog/internal/model"
)

// Store is the single source of truth for input counts.
//
// Every mutation and every snapshot goes through one mutex. Callers never
// receive a reference to the live maps; Snapshot hands out a deep copy so
// rendering and file I/O happen without holding the lock.
type Store struct {
	mu    sync.Mutex
	table model.CountTable
}

// NewStore returns a Store seeded with a copy of initial. A nil table
// starts from the defaults.
func NewStore(initial model.CountTable) *Store {
	if initial == nil {
		initial = model.NewCountTable()
	}
	table := initial.Clone()
	for _, cat := range []model.Category{model.Keyboard, model.Mouse} {
		if table[cat] == nil {
			table[cat] = map[string]int{}
		}
	}
	return &Store{table: table}
}

// Increment adds one to the count for label.
func (s *Store) Increment(cat model.Category, label string) {
	s.mu.Lock()
	counts := s.table[cat]
	if counts == nil {
		counts = map[string]int{}
		s.table[cat] = counts
	}
	counts[label]++
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current table.
func (s *Store) Snapshot() model.CountTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Clone()
}
