package state

import (
	"sync"
	"time"

	"github.com/five82/liftbook/internal/program"
)

// Snapshot is the most recently loaded catalog.
type Snapshot struct {
	Summaries   []program.Summary
	Requested   int // program ids asked for in the last load
	Loaded      bool
	LastUpdated time.Time
}

// Failed returns how many requested programs are missing from Summaries.
func (s Snapshot) Failed() int {
	if n := s.Requested - len(s.Summaries); n > 0 {
		return n
	}
	return 0
}

// Stale reports whether the snapshot is absent or older than maxAge. A
// non-positive maxAge means a loaded snapshot never goes stale.
func (s Snapshot) Stale(now time.Time, maxAge time.Duration) bool {
	if !s.Loaded {
		return true
	}
	if maxAge <= 0 {
		return false
	}
	return now.Sub(s.LastUpdated) > maxAge
}

// Find returns the summary for id.
func (s Snapshot) Find(id string) (program.Summary, bool) {
	for _, sum := range s.Summaries {
		if sum.ID == id {
			return sum, true
		}
	}
	return program.Summary{}, false
}

// Store coordinates concurrent access to the catalog snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog.
func (s *Store) Update(summaries []program.Summary, requested int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{
		Summaries:   cloneSummaries(summaries),
		Requested:   requested,
		Loaded:      true,
		LastUpdated: time.Now(),
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Summaries = cloneSummaries(s.snapshot.Summaries)
	return snap
}

func cloneSummaries(items []program.Summary) []program.Summary {
	if len(items) == 0 {
		return nil
	}
	dup := make([]program.Summary, len(items))
	copy(dup, items)
	return dup
}
