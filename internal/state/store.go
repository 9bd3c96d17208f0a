package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/lrrview/internal/results"
)

// Snapshot represents the dataset as seen by the UI.
type Snapshot struct {
	Records   []results.Sequence
	Source    string
	Loaded    bool
	LoadedAt  time.Time
	Elapsed   time.Duration
	LastError error
}

// Pending reports whether the load has neither finished nor failed yet.
func (s Snapshot) Pending() bool {
	return !s.Loaded && s.LastError == nil
}

// Store hands the dataset from the loader goroutine to the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin records the location being loaded.
func (s *Store) Begin(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Source = source
}

// Update records the outcome of a load. The dataset is written once: after a
// successful load further calls are ignored, so the UI never sees it change.
func (s *Store) Update(records []results.Sequence, elapsed time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Loaded {
		return
	}
	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Loaded = true
	s.snapshot.LoadedAt = time.Now()
	s.snapshot.Elapsed = elapsed
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot. The record slice is
// copied; the records themselves are shared and treated as read-only.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(records []results.Sequence) []results.Sequence {
	if len(records) == 0 {
		return nil
	}
	dup := make([]results.Sequence, len(records))
	copy(dup, records)
	return dup
}
