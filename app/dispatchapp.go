// Package app provides the central orchestrator for the action-dispatch service.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/illmade-knight/action-dispatch/pkg/actions"
	"github.com/illmade-knight/action-dispatch/pkg/auditing"
	"github.com/illmade-knight/action-dispatch/pkg/share"
	"github.com/rs/zerolog"
)

// App is the central application struct. It holds the parser registry, the
// dispatcher, and the auditing service needed to run the dispatch flow.
type App struct {
	Registry   *actions.Registry
	Dispatcher *actions.Dispatcher
	AuditSvc   *auditing.Service
	Logger     zerolog.Logger
}

// New creates a new, fully initialized App. The share parser is registered
// against the supplied capability; further parsers can be added through the
// exposed Registry before serving traffic.
func New(capability share.Capability, auditStore auditing.Store, logger zerolog.Logger) (*App, error) {
	registry := actions.NewRegistry()
	if err := registry.Register(share.NewParser(capability)); err != nil {
		return nil, fmt.Errorf("failed to register share parser: %w", err)
	}

	auditSvc := auditing.NewService(auditStore)
	dispatcher := actions.NewDispatcher(registry, auditSvc, logger)

	return &App{
		Registry:   registry,
		Dispatcher: dispatcher,
		AuditSvc:   auditSvc,
		Logger:     logger,
	}, nil
}

// Dispatch routes a single action envelope through the registry. The
// parser's decode error or the capability's completion is returned
// unchanged to the caller.
func (a *App) Dispatch(ctx context.Context, envelope actions.Envelope) error {
	a.Logger.Debug().Str("action_type", envelope.Type).Msg("Dispatching action envelope")
	return a.Dispatcher.Dispatch(ctx, envelope)
}

// RecentActivity returns the audit records written since the given time.
func (a *App) RecentActivity(ctx context.Context, since time.Time) ([]auditing.Record, error) {
	spec := auditing.QuerySpec{Since: &since}
	return a.AuditSvc.History(ctx, spec)
}
