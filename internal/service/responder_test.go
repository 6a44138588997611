package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"hello-responder/internal/model"
)

// fakeFetcher returns a fixed result and counts calls.
type fakeFetcher struct {
	result model.UpstreamResult
	calls  atomic.Int32
}

func (f *fakeFetcher) Fetch(_ context.Context) model.UpstreamResult {
	f.calls.Add(1)
	return f.result
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertReply(t *testing.T, got model.Reply, wantBody string) {
	t.Helper()
	if got.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", got.StatusCode, http.StatusOK)
	}
	if got.ContentType != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q, want %q", got.ContentType, "text/html; charset=utf-8")
	}
	if string(got.Body) != wantBody {
		t.Errorf("Body = %q, want %q", got.Body, wantBody)
	}
}

func TestStaticResponder_Respond(t *testing.T) {
	r := NewStaticResponder()
	assertReply(t, r.Respond(context.Background()), "<h1>Hello World</h1>")
}

func TestStaticResponder_Idempotent(t *testing.T) {
	r := NewStaticResponder()
	first := r.Respond(context.Background())

	for range 100 {
		got := r.Respond(context.Background())
		if got.StatusCode != first.StatusCode || got.ContentType != first.ContentType || !bytes.Equal(got.Body, first.Body) {
			t.Fatalf("Respond() = %+v, want %+v", got, first)
		}
	}
}

func TestProxyResponder_Respond(t *testing.T) {
	tests := []struct {
		name     string
		result   model.UpstreamResult
		wantBody string
	}{
		{
			name:     "upstream ok",
			result:   model.UpstreamResult{StatusCode: http.StatusOK, Body: []byte("OK")},
			wantBody: "OK",
		},
		{
			name:     "upstream non-2xx body passed through",
			result:   model.UpstreamResult{StatusCode: http.StatusInternalServerError, Body: []byte("boom")},
			wantBody: "boom",
		},
		{
			name:     "upstream empty body",
			result:   model.UpstreamResult{StatusCode: http.StatusNoContent},
			wantBody: "",
		},
		{
			name:     "upstream failure",
			result:   model.UpstreamResult{Err: errors.New("connection refused")},
			wantBody: "error",
		},
		{
			name:     "failure after status received",
			result:   model.UpstreamResult{StatusCode: http.StatusOK, Err: errors.New("unexpected EOF")},
			wantBody: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{result: tt.result}
			r := NewProxyResponder(f, discardLogger())

			assertReply(t, r.Respond(context.Background()), tt.wantBody)

			if n := f.calls.Load(); n != 1 {
				t.Errorf("upstream calls = %d, want exactly 1", n)
			}
		})
	}
}

func TestProxyResponder_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	f := &fakeFetcher{result: model.UpstreamResult{Err: errors.New("dial tcp: connection refused")}}

	NewProxyResponder(f, logger).Respond(context.Background())

	if !strings.Contains(buf.String(), "upstream call failed") || !strings.Contains(buf.String(), "connection refused") {
		t.Errorf("expected failure log with cause, got: %q", buf.String())
	}
}
