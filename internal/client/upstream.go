// Package client provides the shared upstream HTTP client for the proxy responder.
package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hello-responder/internal/config"
	"hello-responder/internal/metrics"
	"hello-responder/internal/model"
)

// UpstreamClient issues GETs to the single configured upstream URL. One instance
// is shared by all request handlers; it is safe for concurrent use.
type UpstreamClient struct {
	httpClient *http.Client
	transport  *http.Transport
	url        string
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewUpstreamClient creates an UpstreamClient with connection pooling.
// The metrics parameter is optional; pass nil to disable upstream metrics recording.
func NewUpstreamClient(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*UpstreamClient, error) {
	u, err := url.Parse(cfg.Upstream.URL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("upstream url %q must be absolute http(s)", cfg.Upstream.URL)
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.Upstream.IdleConnections,
		MaxIdleConnsPerHost: cfg.Upstream.IdleConnections,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   15 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	return &UpstreamClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		},
		transport: transport,
		url:       u.String(),
		logger:    logger.With("component", "upstream_client"),
		metrics:   m,
	}, nil
}

// URL returns the upstream URL every Fetch targets.
func (c *UpstreamClient) URL() string {
	return c.url
}

// Start marks the client ready. It runs before the listener binds.
func (c *UpstreamClient) Start(_ context.Context) error {
	c.logger.Info("upstream client started", "url", c.url, "timeout", c.httpClient.Timeout)
	return nil
}

// Stop releases pooled upstream connections.
func (c *UpstreamClient) Stop(_ context.Context) error {
	c.transport.CloseIdleConnections()
	c.logger.Info("upstream client stopped")
	return nil
}

// Fetch performs one GET against the upstream and reads the body in full.
// It never retries. Transport errors, timeouts, and body read errors are
// reported in the result; upstream status codes are not treated as errors.
func (c *UpstreamClient) Fetch(ctx context.Context) model.UpstreamResult {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return c.failed(start, 0, fmt.Errorf("build upstream request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failed(start, 0, fmt.Errorf("upstream request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failed(start, resp.StatusCode, fmt.Errorf("read upstream body: %w", err))
	}

	c.observe(start, metrics.OutcomeOK, resp.StatusCode)
	c.logger.Debug("upstream response",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	return model.UpstreamResult{StatusCode: resp.StatusCode, Body: body}
}

func (c *UpstreamClient) failed(start time.Time, status int, err error) model.UpstreamResult {
	c.observe(start, metrics.OutcomeError, status)
	return model.UpstreamResult{StatusCode: status, Err: err}
}

func (c *UpstreamClient) observe(start time.Time, outcome string, status int) {
	if c.metrics == nil {
		return
	}
	code := "none"
	if status != 0 {
		code = strconv.Itoa(status)
	}
	c.metrics.UpstreamDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	c.metrics.UpstreamRequests.WithLabelValues(outcome, code).Inc()
}
