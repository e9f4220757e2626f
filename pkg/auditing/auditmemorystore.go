package auditing

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore is a thread-safe, in-memory implementation of the Store interface.
type InMemoryStore struct {
	sync.RWMutex
	records map[uuid.UUID]Record
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[uuid.UUID]Record),
	}
}

// Add saves a new record to the store.
func (s *InMemoryStore) Add(ctx context.Context, record Record) error {
	s.Lock()
	defer s.Unlock()

	s.records[record.ID] = record
	return nil
}

// Query retrieves records based on the provided specification.
func (s *InMemoryStore) Query(ctx context.Context, spec QuerySpec) ([]Record, error) {
	s.RLock()
	defer s.RUnlock()

	var results []Record

	for _, record := range s.records {
		if spec.ActionType != nil && record.ActionType != *spec.ActionType {
			continue
		}
		if spec.Outcome != nil && record.Outcome != *spec.Outcome {
			continue
		}
		if spec.Since != nil && record.DispatchedAt.Before(*spec.Since) {
			continue
		}
		results = append(results, record)
	}

	return results, nil
}
