package actions

import "errors"

// Envelope is the untyped wire form of a server-driven action: a type tag
// naming the action and an opaque data payload for the matching parser.
type Envelope struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

var (
	// ErrUnknownAction is returned when no parser is registered for an
	// envelope's type tag.
	ErrUnknownAction = errors.New("no parser registered for action type")

	// ErrMalformedPayload is returned when an envelope's data payload is
	// missing or structurally unusable. Individually optional fields never
	// trigger it; only the payload as a whole does.
	ErrMalformedPayload = errors.New("action payload is missing or malformed")
)
