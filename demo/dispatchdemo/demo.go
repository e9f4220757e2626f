// This demo runs the whole dispatch flow in-process with a stub capability,
// showing what reaches the share surface for a few sample envelopes.

package main

import (
	"context"
	"log"
	"time"

	"github.com/illmade-knight/action-dispatch/app"
	"github.com/illmade-knight/action-dispatch/pkg/actions"
	"github.com/illmade-knight/action-dispatch/pkg/auditing"
	"github.com/illmade-knight/action-dispatch/pkg/share"
	"github.com/rs/zerolog"
)

// printSharer stands in for the platform share sheet.
type printSharer struct{}

func (printSharer) Invoke(ctx context.Context, params share.ShareParams) error {
	if params.Text != nil {
		log.Printf("  text:    %q", *params.Text)
	}
	if params.Title != nil {
		log.Printf("  title:   %q", *params.Title)
	}
	if params.Subject != nil {
		log.Printf("  subject: %q", *params.Subject)
	}
	if params.URI != nil {
		log.Printf("  uri:     %s", params.URI)
	}
	return nil
}

func main() {
	log.Println("--- Starting Dispatch Demo ---")

	ctx := context.Background()
	application, err := app.New(printSharer{}, auditing.NewInMemoryStore(), zerolog.Nop())
	if err != nil {
		log.Fatalf("failed to assemble app: %v", err)
	}

	envelopes := []actions.Envelope{
		{Type: "share", Data: map[string]any{"text": "Check this out", "uri": "https://example.com"}},
		{Type: "share", Data: map[string]any{"title": "Quarterly report", "subject": "Q3 numbers", "uri": "not a uri ???"}},
		{Type: "share", Data: map[string]any{"text": "hi", "extra": "silently dropped"}},
		{Type: "navigate", Data: map[string]any{"route": "/home"}},
	}

	for _, envelope := range envelopes {
		log.Printf("\n--- Dispatching %q action ---", envelope.Type)
		if err := application.Dispatch(ctx, envelope); err != nil {
			log.Printf("  dispatch failed: %v", err)
		}
	}

	records, _ := application.RecentActivity(ctx, time.Now().Add(-time.Minute))
	log.Printf("\n--- Audit trail: %d dispatches recorded ---", len(records))
	for _, record := range records {
		log.Printf("  %s -> %s %s", record.ActionType, record.Outcome, record.Detail)
	}
}
