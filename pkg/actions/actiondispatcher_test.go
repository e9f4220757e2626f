package actions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/illmade-knight/action-dispatch/pkg/actions"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuditSink struct {
	RecordDispatchFunc func(ctx context.Context, actionType string, dispatchErr error) error
}

func (m *mockAuditSink) RecordDispatch(ctx context.Context, actionType string, dispatchErr error) error {
	return m.RecordDispatchFunc(ctx, actionType, dispatchErr)
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	t.Run("Routes envelope through the matching parser", func(t *testing.T) {
		// Arrange
		decoded := struct{ Value string }{Value: "decoded"}
		var invokedWith any
		parser := &mockParser{
			tag: "share",
			GetModelFunc: func(envelope actions.Envelope) (any, error) {
				assert.Equal(t, "share", envelope.Type)
				return decoded, nil
			},
			OnCallFunc: func(ctx context.Context, model any) error {
				invokedWith = model
				return nil
			},
		}
		registry := actions.NewRegistry()
		require.NoError(t, registry.Register(parser))

		var recordedType string
		var recordedErr error
		audit := &mockAuditSink{
			RecordDispatchFunc: func(ctx context.Context, actionType string, dispatchErr error) error {
				recordedType = actionType
				recordedErr = dispatchErr
				return nil
			},
		}
		dispatcher := actions.NewDispatcher(registry, audit, logger)

		// Act
		err := dispatcher.Dispatch(ctx, actions.Envelope{Type: "share", Data: map[string]any{}})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, decoded, invokedWith)
		assert.Equal(t, "share", recordedType)
		assert.NoError(t, recordedErr)
	})

	t.Run("Unknown action type", func(t *testing.T) {
		dispatcher := actions.NewDispatcher(actions.NewRegistry(), nil, logger)

		err := dispatcher.Dispatch(ctx, actions.Envelope{Type: "navigate"})
		require.Error(t, err)
		assert.ErrorIs(t, err, actions.ErrUnknownAction)
	})

	t.Run("Decode failure propagates and is audited", func(t *testing.T) {
		decodeErr := errors.New("bad payload")
		parser := &mockParser{
			tag: "share",
			GetModelFunc: func(envelope actions.Envelope) (any, error) {
				return nil, decodeErr
			},
		}
		registry := actions.NewRegistry()
		require.NoError(t, registry.Register(parser))

		var recordedErr error
		audit := &mockAuditSink{
			RecordDispatchFunc: func(ctx context.Context, actionType string, dispatchErr error) error {
				recordedErr = dispatchErr
				return nil
			},
		}
		dispatcher := actions.NewDispatcher(registry, audit, logger)

		err := dispatcher.Dispatch(ctx, actions.Envelope{Type: "share"})
		assert.Equal(t, decodeErr, err)
		assert.Equal(t, decodeErr, recordedErr)
	})

	t.Run("Capability failure propagates unchanged", func(t *testing.T) {
		capabilityErr := errors.New("user cancelled the share sheet")
		parser := &mockParser{
			tag: "share",
			GetModelFunc: func(envelope actions.Envelope) (any, error) {
				return nil, nil
			},
			OnCallFunc: func(ctx context.Context, model any) error {
				return capabilityErr
			},
		}
		registry := actions.NewRegistry()
		require.NoError(t, registry.Register(parser))
		dispatcher := actions.NewDispatcher(registry, nil, logger)

		err := dispatcher.Dispatch(ctx, actions.Envelope{Type: "share"})
		assert.Equal(t, capabilityErr, err)
	})

	t.Run("Audit failure does not mask a successful dispatch", func(t *testing.T) {
		parser := &mockParser{
			tag: "share",
			GetModelFunc: func(envelope actions.Envelope) (any, error) {
				return nil, nil
			},
			OnCallFunc: func(ctx context.Context, model any) error {
				return nil
			},
		}
		registry := actions.NewRegistry()
		require.NoError(t, registry.Register(parser))

		audit := &mockAuditSink{
			RecordDispatchFunc: func(ctx context.Context, actionType string, dispatchErr error) error {
				return errors.New("audit store unavailable")
			},
		}
		dispatcher := actions.NewDispatcher(registry, audit, logger)

		assert.NoError(t, dispatcher.Dispatch(ctx, actions.Envelope{Type: "share"}))
	})
}
