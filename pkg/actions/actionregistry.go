package actions

import (
	"context"
	"fmt"
	"sync"
)

// Parser bridges the generic dispatch layer to one native capability.
// GetModel converts an envelope's untyped data into the parser's typed
// model; OnCall executes that model against the capability. The model is
// opaque to the dispatch layer, which only shuttles it between the two calls.
type Parser interface {
	// Tag returns the action type string this parser handles, e.g. "share".
	Tag() string
	// GetModel decodes the envelope's data payload into a typed model.
	GetModel(envelope Envelope) (any, error)
	// OnCall invokes the capability with a model previously produced by
	// GetModel on the same parser.
	OnCall(ctx context.Context, model any) error
}

// Registry is a thread-safe, flat mapping from action type tags to parsers.
type Registry struct {
	sync.RWMutex
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Parser),
	}
}

// Register adds a parser under its tag. Registering two parsers with the
// same tag is a wiring mistake, so it is surfaced here rather than at
// dispatch time.
func (r *Registry) Register(parser Parser) error {
	r.Lock()
	defer r.Unlock()

	tag := parser.Tag()
	if _, exists := r.parsers[tag]; exists {
		return fmt.Errorf("parser already registered for tag %q", tag)
	}
	r.parsers[tag] = parser
	return nil
}

// Get looks up the parser for a tag.
func (r *Registry) Get(tag string) (Parser, bool) {
	r.RLock()
	defer r.RUnlock()

	parser, ok := r.parsers[tag]
	return parser, ok
}

// Tags returns the tags of all registered parsers.
func (r *Registry) Tags() []string {
	r.RLock()
	defer r.RUnlock()

	tags := make([]string, 0, len(r.parsers))
	for tag := range r.parsers {
		tags = append(tags, tag)
	}
	return tags
}
