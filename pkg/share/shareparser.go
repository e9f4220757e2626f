package share

import (
	"context"
	"fmt"

	"github.com/illmade-knight/action-dispatch/pkg/actions"
)

// ActionType is the registry tag routing "share" envelopes to this parser.
// Tag uniqueness across all registered parsers is the registry's concern.
const ActionType = "share"

// Capability is the external share facility: a file chooser, mail composer
// or OS share sheet. Invoke blocks until the share completes or the context
// is cancelled; cancellation and timeout policy belong entirely to the
// capability and its caller.
type Capability interface {
	Invoke(ctx context.Context, params ShareParams) error
}

// Parser adapts the generic action dispatch layer to the share capability.
type Parser struct {
	capability Capability
}

// NewParser creates a share parser backed by the given capability.
func NewParser(capability Capability) *Parser {
	return &Parser{capability: capability}
}

// Tag implements actions.Parser.
func (p *Parser) Tag() string {
	return ActionType
}

// GetModel decodes the envelope's data payload into a ShareRequest. A
// missing payload is fatal to the invocation; individually absent fields
// are not.
func (p *Parser) GetModel(envelope actions.Envelope) (any, error) {
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: share action carries no data", actions.ErrMalformedPayload)
	}
	return DecodeData(envelope.Data), nil
}

// OnCall converts the decoded request to capability parameters and invokes
// the share capability, returning its completion unchanged.
func (p *Parser) OnCall(ctx context.Context, model any) error {
	request, ok := model.(ShareRequest)
	if !ok {
		return fmt.Errorf("%w: expected share request model, got %T", actions.ErrMalformedPayload, model)
	}
	return p.capability.Invoke(ctx, request.Params())
}
