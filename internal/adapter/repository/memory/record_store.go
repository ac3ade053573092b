// Package memory provides a process-local record store.
package memory

import (
	"context"
	"sync"
)

// RecordStore implements usecase.RecordStore in memory. Records are lost
// when the process exits.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewRecordStore creates an empty RecordStore.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[string]string)}
}

// Get retrieves a record by key.
func (s *RecordStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	return value, ok, nil
}

// Set stores a record.
func (s *RecordStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = value
	return nil
}
