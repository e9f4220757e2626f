// Package actions provides the dispatch layer for server-driven UI actions:
// an untyped action envelope is routed by its type tag to a registered
// parser, which decodes the payload and invokes its native capability.
package actions

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// AuditSink receives a record of each completed dispatch attempt.
type AuditSink interface {
	RecordDispatch(ctx context.Context, actionType string, dispatchErr error) error
}

// Dispatcher routes envelopes through the registry. Each dispatch is a
// single logical operation: resolve the parser, decode, invoke, and return
// the capability's completion unchanged. No retries, no shared state
// between invocations.
type Dispatcher struct {
	registry *Registry
	audit    AuditSink
	logger   zerolog.Logger
}

// NewDispatcher creates a dispatcher over the given registry. The audit
// sink may be nil, in which case dispatches are not recorded.
func NewDispatcher(registry *Registry, audit AuditSink, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		audit:    audit,
		logger:   logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch resolves and executes a single action envelope. Decode failures
// and capability failures are propagated to the caller without wrapping or
// translation; the framework above decides how to surface them.
func (d *Dispatcher) Dispatch(ctx context.Context, envelope Envelope) error {
	logger := d.logger.With().Str("action_type", envelope.Type).Logger()

	parser, ok := d.registry.Get(envelope.Type)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownAction, envelope.Type)
		d.record(ctx, envelope.Type, err)
		return err
	}

	model, err := parser.GetModel(envelope)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to decode action payload")
		d.record(ctx, envelope.Type, err)
		return err
	}

	err = parser.OnCall(ctx, model)
	d.record(ctx, envelope.Type, err)
	if err != nil {
		logger.Warn().Err(err).Msg("Capability invocation failed")
		return err
	}

	logger.Info().Msg("Action dispatched")
	return nil
}

// record writes the audit entry. Audit failures must not mask the dispatch
// outcome, so they are only logged.
func (d *Dispatcher) record(ctx context.Context, actionType string, dispatchErr error) {
	if d.audit == nil {
		return
	}
	if err := d.audit.RecordDispatch(ctx, actionType, dispatchErr); err != nil {
		d.logger.Error().Err(err).Str("action_type", actionType).Msg("Failed to record dispatch audit entry")
	}
}
