// Package capability provides concrete share.Capability implementations.
// Server-side there is no OS share sheet to hand content to, so the
// equivalents are an HTTP webhook and a Pub/Sub topic.
package capability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/illmade-knight/action-dispatch/pkg/share"
	"github.com/rs/zerolog"
)

// WebhookSharer delivers share parameters to a configured HTTP endpoint.
type WebhookSharer struct {
	endpointURL string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewWebhookSharer creates a new webhook-backed share capability.
func NewWebhookSharer(endpointURL string, logger zerolog.Logger) *WebhookSharer {
	return &WebhookSharer{
		endpointURL: endpointURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With().Str("capability", "webhook-share").Logger(),
	}
}

// Invoke posts the JSON-encoded share parameters to the endpoint. One
// attempt, no retry; a failed share is surfaced once to the caller.
func (s *WebhookSharer) Invoke(ctx context.Context, params share.ShareParams) error {
	payload, err := json.Marshal(toShareDocument(params))
	if err != nil {
		return fmt.Errorf("failed to marshal share payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpointURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create share request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute share request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("share endpoint returned unexpected status code: %d", resp.StatusCode)
	}

	s.logger.Info().Msg("Successfully delivered share payload to webhook")
	return nil
}
