// Package service implements the responders that produce every reply.
package service

import (
	"context"
	"log/slog"
	"net/http"

	"hello-responder/internal/model"
)

// Responder produces the reply for an inbound request. The request itself is
// never inspected: only its arrival matters.
type Responder interface {
	Respond(ctx context.Context) model.Reply
}

// Fetcher performs one upstream call.
type Fetcher interface {
	Fetch(ctx context.Context) model.UpstreamResult
}

// StaticResponder always answers with the fixed hello page.
type StaticResponder struct {
	body []byte
}

// NewStaticResponder creates a StaticResponder.
func NewStaticResponder() *StaticResponder {
	return &StaticResponder{body: []byte(model.HelloBody)}
}

// Respond returns the hello page. The body slice is shared and must not be mutated.
func (s *StaticResponder) Respond(_ context.Context) model.Reply {
	return htmlReply(s.body)
}

// ProxyResponder answers with whatever the upstream returns.
type ProxyResponder struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewProxyResponder creates a ProxyResponder backed by the shared fetcher.
func NewProxyResponder(f Fetcher, logger *slog.Logger) *ProxyResponder {
	return &ProxyResponder{
		fetcher: f,
		logger:  logger.With("component", "proxy_responder"),
	}
}

// Respond makes exactly one upstream call and blocks until it finishes.
//
// The reply is always 200 text/html. A completed call yields the upstream body
// verbatim whatever its status; a failed one yields the literal "error".
func (p *ProxyResponder) Respond(ctx context.Context) model.Reply {
	res := p.fetcher.Fetch(ctx)
	if !res.OK() {
		p.logger.Warn("upstream call failed", "err", res.Err)
		return htmlReply([]byte(model.ErrorBody))
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		p.logger.Debug("passing through non-2xx upstream body", "status", res.StatusCode)
	}
	return htmlReply(res.Body)
}

func htmlReply(body []byte) model.Reply {
	return model.Reply{
		StatusCode:  http.StatusOK,
		ContentType: model.ContentTypeHTML,
		Body:        body,
	}
}
