package chargify

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}

	// debug logging wraps transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c2, err := New("key", "acme", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c2.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport")
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c2.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestWithDebugLogging_Idempotent(t *testing.T) {
	c, err := New("key", "acme", WithDebugLogging(true), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dt, ok := c.http.Transport.(*debugTransport)
	if !ok {
		t.Fatalf("expected debugTransport")
	}
	if _, nested := dt.base.(*debugTransport); nested {
		t.Fatalf("debug transport wrapped twice")
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("CHARGIFY_DEBUG", "true")
	c, err := New("key", "acme")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when CHARGIFY_DEBUG=true")
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("key", "acme", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}

func TestWithBaseURL(t *testing.T) {
	c, err := New("key", "acme", WithBaseURL("http://127.0.0.1:9999/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://127.0.0.1:9999" {
		t.Fatalf("base url = %q", c.BaseURL())
	}

	for _, bad := range []string{"", "acme.chargify.com", "://nope"} {
		if _, err := New("key", "acme", WithBaseURL(bad)); err == nil {
			t.Fatalf("expected error for base url %q", bad)
		}
	}
}

func TestWithTracing_WrapsTransport(t *testing.T) {
	c, err := New("key", "acme", WithTracing(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*otelhttp.Transport); !ok {
		t.Fatalf("expected otelhttp transport, got %T", c.http.Transport)
	}

	c2, err := New("key", "acme", WithTracing(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c2.http.Transport.(*otelhttp.Transport); ok {
		t.Fatalf("otelhttp transport installed although tracing is disabled")
	}
}
