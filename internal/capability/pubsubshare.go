package capability

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	"github.com/illmade-knight/action-dispatch/pkg/share"
	"github.com/rs/zerolog"
)

// PubSubSharer publishes share parameters to a Pub/Sub topic, so downstream
// consumers (mailers, notifiers) can act on them.
type PubSubSharer struct {
	publisher *pubsub.Publisher
	logger    zerolog.Logger
}

// NewPubSubSharer creates a new Pub/Sub-backed share capability.
func NewPubSubSharer(publisher *pubsub.Publisher, logger zerolog.Logger) *PubSubSharer {
	return &PubSubSharer{
		publisher: publisher,
		logger:    logger.With().Str("capability", "pubsub-share").Logger(),
	}
}

// Invoke publishes the JSON-encoded share parameters and waits for the
// publish to be acknowledged, which is this backend's completion signal.
func (s *PubSubSharer) Invoke(ctx context.Context, params share.ShareParams) error {
	payload, err := json.Marshal(toShareDocument(params))
	if err != nil {
		return fmt.Errorf("failed to marshal share payload: %w", err)
	}

	result := s.publisher.Publish(ctx, &pubsub.Message{Data: payload})
	messageID, err := result.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to publish share payload: %w", err)
	}

	s.logger.Info().Str("message_id", messageID).Msg("Successfully published share payload")
	return nil
}
