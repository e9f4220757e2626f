//go:build integration

package capability_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/google/uuid"
	"github.com/illmade-knight/action-dispatch/internal/capability"
	"github.com/illmade-knight/action-dispatch/pkg/share"
	"github.com/illmade-knight/go-test/emulators"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubSubSharer_Invoke(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)
	logger := zerolog.New(zerolog.NewTestWriter(t))
	const projectID = "test-project"
	runID := uuid.NewString()

	// 1. SETUP: Start the emulator and create topic and subscription
	pubsubConn := emulators.SetupPubsubEmulator(t, ctx, emulators.GetDefaultPubsubConfig(projectID))
	psClient, err := pubsub.NewClient(ctx, projectID, pubsubConn.ClientOptions...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = psClient.Close() })

	topicID := "share-topic-" + runID
	subID := "share-sub-" + runID
	topicName := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = psClient.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	require.NoError(t, err)
	subName := fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subID)
	_, err = psClient.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  subName,
		Topic: topicName,
	})
	require.NoError(t, err)

	// 2. ACT: Invoke the capability
	sharer := capability.NewPubSubSharer(psClient.Publisher(topicID), logger)

	text := "Check this out"
	params := share.ShareParams{Text: &text}
	require.NoError(t, sharer.Invoke(ctx, params))

	// 3. ASSERT: The payload arrives on the subscription
	received := make(chan map[string]any, 1)
	receiveCtx, stopReceiving := context.WithTimeout(ctx, 30*time.Second)
	defer stopReceiving()
	go func() {
		_ = psClient.Subscriber(subID).Receive(receiveCtx, func(ctxRec context.Context, msg *pubsub.Message) {
			msg.Ack()
			var payload map[string]any
			if err := json.Unmarshal(msg.Data, &payload); err == nil {
				received <- payload
			}
			stopReceiving()
		})
	}()

	select {
	case payload := <-received:
		assert.Equal(t, "Check this out", payload["text"])
		assert.NotContains(t, payload, "uri")
		assert.NotContains(t, payload, "files")
	case <-receiveCtx.Done():
		t.Fatal("timed out waiting for the published share payload")
	}
}
