// Package memory provides an in-memory allow-list store for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"authgate/internal/authz"
	"authgate/pkg/sentinel"
)

// Store keeps allow-list entries in a map. It intentionally favors clarity over
// performance.
type Store struct {
	mu      sync.RWMutex
	entries map[string]authz.Entry
	failErr error
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{entries: make(map[string]authz.Entry)}
}

// Put inserts or replaces an entry. Dev/test seeding helper; the gate core itself
// never writes to the allow-list.
func (s *Store) Put(subjectID string, status authz.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[subjectID] = authz.Entry{
		SubjectID: subjectID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

// FailWith makes every subsequent query return err, simulating a store outage.
// Pass nil to restore normal behavior.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

// FindActive implements authz.AllowlistStore.
func (s *Store) FindActive(_ context.Context, subjectID string) (*authz.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	entry, ok := s.entries[subjectID]
	if !ok || entry.Status != authz.StatusActive {
		return nil, sentinel.ErrNotFound
	}
	return &entry, nil
}
