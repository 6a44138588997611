// Package model defines shared types for the responders.
package model

// ContentTypeHTML is sent on every reply, including upstream failures.
const ContentTypeHTML = "text/html; charset=utf-8"

const (
	// HelloBody is the fixed body of the static responder.
	HelloBody = "<h1>Hello World</h1>"
	// ErrorBody replaces the upstream body when the upstream call fails.
	ErrorBody = "error"
)

// Variant names which responder a process runs.
type Variant string

const (
	VariantStatic Variant = "static"
	VariantProxy  Variant = "proxy"
)

// Reply is the response written back to the inbound client.
type Reply struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// UpstreamResult is the outcome of a single upstream fetch. Exactly one of
// Body or Err is meaningful: Err == nil means the call completed and Body holds
// the full upstream body, whatever its status code.
type UpstreamResult struct {
	StatusCode int
	Body       []byte
	Err        error
}

// OK reports whether the upstream call completed.
func (r UpstreamResult) OK() bool {
	return r.Err == nil
}
