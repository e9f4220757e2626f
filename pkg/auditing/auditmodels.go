package auditing

import (
	"time"

	"github.com/google/uuid"
)

// Outcome classifies how a dispatch attempt finished.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

// Record is one dispatched action invocation: what was asked for, how it
// ended, and when. Detail carries the failure message for failed outcomes.
type Record struct {
	ID           uuid.UUID
	ActionType   string
	Outcome      string
	Detail       string
	DispatchedAt time.Time
}
