package scales

import (
	"context"
	"sync"
	"time"
)

// AdministrationStore persists when each scale was last administered to each
// user.  The production implementation lives in the Redis infrastructure
// layer; this package ships an in-memory store for tests and the CLI.
type AdministrationStore interface {
	// LastAdministered returns the most recent administration timestamp for
	// the user and scale.  found is false when no record exists (or the
	// record fell out of the lookback window).
	LastAdministered(ctx context.Context, userID, scaleType string) (last time.Time, found bool, err error)

	// RecordAdministration stores the administration timestamp.
	RecordAdministration(ctx context.Context, userID, scaleType string, at time.Time) error
}

// MemoryAdministrationStore is a process-local AdministrationStore.
type MemoryAdministrationStore struct {
	mu      sync.RWMutex
	records map[string]time.Time
}

// NewMemoryAdministrationStore returns an empty in-memory store.
func NewMemoryAdministrationStore() *MemoryAdministrationStore {
	return &MemoryAdministrationStore{records: make(map[string]time.Time)}
}

func (s *MemoryAdministrationStore) key(userID, scaleType string) string {
	return userID + ":" + scaleType
}

// LastAdministered implements AdministrationStore.
func (s *MemoryAdministrationStore) LastAdministered(_ context.Context, userID, scaleType string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	last, ok := s.records[s.key(userID, scaleType)]
	return last, ok, nil
}

// RecordAdministration implements AdministrationStore.
func (s *MemoryAdministrationStore) RecordAdministration(_ context.Context, userID, scaleType string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[s.key(userID, scaleType)] = at
	return nil
}
