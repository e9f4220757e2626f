// Package share maps the "share" UI action onto the platform share
// capability: an untyped wire payload becomes a typed ShareRequest, which is
// converted to the capability's native parameter shape and handed off.
package share

import "net/url"

// ShareRequest holds the subset of shareable fields this mapping supports.
// Every field is independently optional; an empty request is valid and
// produces an empty share. Treat a request as immutable after construction —
// use With to derive changed copies.
//
// Text and URI are mutually exclusive in intended usage, but that is a
// caller contract, not a validated invariant.
type ShareRequest struct {
	Text    *string
	Title   *string
	Subject *string
	URI     *url.URL
}

// Overrides selects replacement values for With. A nil field retains the
// original value, the same pointer-filter shape as a store QuerySpec.
type Overrides struct {
	Text    *string
	Title   *string
	Subject *string
	URI     *url.URL
}

// With returns a copy of the request with each non-nil override applied.
// The receiver is never mutated.
func (r ShareRequest) With(o Overrides) ShareRequest {
	out := r
	if o.Text != nil {
		out.Text = o.Text
	}
	if o.Title != nil {
		out.Title = o.Title
	}
	if o.Subject != nil {
		out.Subject = o.Subject
	}
	if o.URI != nil {
		out.URI = o.URI
	}
	return out
}

// ShareParams is the share capability's full native parameter surface. The
// action mapping populates only the four fields mirrored on ShareRequest;
// the remainder (attachments, file-name overrides, download fallback,
// preview thumbnail, popover anchor) is deliberately not forwarded and
// takes the capability's own defaults. Anyone adding a field must extend
// both conversions and Overrides together.
type ShareParams struct {
	Text    *string
	Title   *string
	Subject *string
	URI     *url.URL

	Files              []string
	FileNames          []string
	FallbackToDownload bool
	Thumbnail          []byte
	AnchorRect         *Rect
}

// Rect is a popover anchor rectangle in the capability's coordinate space.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// DecodeData maps an untyped data payload onto a ShareRequest.
//
// Each supported key is taken only when present and of string type;
// anything else leaves the field absent. A present but unparsable uri also
// degrades to absent rather than erroring — "absent" and "unparsable" are
// deliberately indistinguishable to callers. Unsupported keys are dropped
// without trace; the record defines the supported surface.
func DecodeData(data map[string]any) ShareRequest {
	var request ShareRequest
	if v, ok := data["text"].(string); ok {
		request.Text = &v
	}
	if v, ok := data["title"].(string); ok {
		request.Title = &v
	}
	if v, ok := data["subject"].(string); ok {
		request.Subject = &v
	}
	if v, ok := data["uri"].(string); ok {
		if u, err := url.ParseRequestURI(v); err == nil {
			request.URI = u
		}
	}
	return request
}

// Params converts the request into the capability's native parameter shape.
// Only the four supported fields are copied; the rest of the surface is
// left to the capability's defaults.
func (r ShareRequest) Params() ShareParams {
	return ShareParams{
		Text:    r.Text,
		Title:   r.Title,
		Subject: r.Subject,
		URI:     r.URI,
	}
}

// RequestFromParams converts capability parameters back into a ShareRequest.
// Fields outside the supported four are ignored, so for any request built
// from the supported fields, RequestFromParams(r.Params()) == r.
func RequestFromParams(params ShareParams) ShareRequest {
	return ShareRequest{
		Text:    params.Text,
		Title:   params.Title,
		Subject: params.Subject,
		URI:     params.URI,
	}
}
