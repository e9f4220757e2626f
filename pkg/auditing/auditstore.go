package auditing

import (
	"context"
	"time"
)

// QuerySpec defines the parameters for an audit query.
// Using pointers allows us to distinguish between a filter not being set
// and a filter having an empty value.
type QuerySpec struct {
	ActionType *string
	Outcome    *string
	Since      *time.Time // Find records dispatched at or after this time.
}

// Store is the interface for persisting and querying dispatch records.
// This decouples the auditing service from the storage implementation.
type Store interface {
	// Add saves a new record to the store.
	Add(ctx context.Context, record Record) error
	// Query retrieves records based on the provided specification.
	Query(ctx context.Context, spec QuerySpec) ([]Record, error)
}
