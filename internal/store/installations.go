package store

import (
	"sync"

	"github.com/heliotrack/solar-installations/internal/installation"
)

// InstallationStore is a concurrency-safe in-memory repository of
// installation records. It is the single owner of the backing slice; callers
// only see copies.
type InstallationStore struct {
	mu            sync.RWMutex
	installations []installation.Installation
}

// NewInstallationStore creates a store pre-populated with the given records.
func NewInstallationStore(seed []installation.Installation) *InstallationStore {
	s := &InstallationStore{}
	s.installations = append(s.installations, seed...)
	return s
}

// All returns a copy of every record, in insertion order.
func (s *InstallationStore) All() []installation.Installation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]installation.Installation, len(s.installations))
	copy(out, s.installations)
	return out
}

// Insert allocates the next ID (max existing + 1) and appends the record.
// Allocation and append happen under one lock so two concurrent inserts can
// never observe the same max.
func (s *InstallationStore) Insert(inst installation.Installation) installation.Installation {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.installations {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	inst.ID = maxID + 1

	s.installations = append(s.installations, inst)
	return inst
}

// Len returns the number of stored records.
func (s *InstallationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.installations)
}
