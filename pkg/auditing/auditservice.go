// Package auditing records the outcome of each dispatched action so
// operators can answer "what did the UI ask us to do, and did it work".
package auditing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service provides the business logic for recording and querying dispatch history.
type Service struct {
	store Store
}

// NewService is the constructor for the auditing Service. It takes a Store,
// allowing us to switch between in-memory, database, or mock stores.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// RecordDispatch writes one audit entry for a finished dispatch attempt.
// A nil dispatchErr records a completed outcome; anything else records a
// failure with the error message as detail.
func (s *Service) RecordDispatch(ctx context.Context, actionType string, dispatchErr error) error {
	record := Record{
		ID:           uuid.New(),
		ActionType:   actionType,
		Outcome:      OutcomeCompleted,
		DispatchedAt: time.Now(),
	}
	if dispatchErr != nil {
		record.Outcome = OutcomeFailed
		record.Detail = dispatchErr.Error()
	}

	if err := s.store.Add(ctx, record); err != nil {
		return fmt.Errorf("failed to save audit record: %w", err)
	}
	return nil
}

// History retrieves records matching the given specification.
func (s *Service) History(ctx context.Context, spec QuerySpec) ([]Record, error) {
	return s.store.Query(ctx, spec)
}

// RecentFailures is a convenient method to find what went wrong since a given time.
func (s *Service) RecentFailures(ctx context.Context, since time.Time) ([]Record, error) {
	outcome := OutcomeFailed
	spec := QuerySpec{
		Outcome: &outcome,
		Since:   &since,
	}
	return s.store.Query(ctx, spec)
}
