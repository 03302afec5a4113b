package chargify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestNew_BaseURL(t *testing.T) {
	c, err := New("key", "acme")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.BaseURL(); got != "https://acme.chargify.com" {
		t.Fatalf("base url = %q", got)
	}
	if c.APIKey() != "key" || c.Subdomain() != "acme" {
		t.Fatalf("credentials not kept: %q %q", c.APIKey(), c.Subdomain())
	}
	if c.http.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %v", c.http.Timeout)
	}
}

func TestNew_MissingCredentials(t *testing.T) {
	if _, err := New("", "acme"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := New("key", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestNew_OptionErrorPropagates(t *testing.T) {
	if _, err := New("key", "acme", WithHTTPTimeout(0)); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
	if _, err := New("key", "acme", WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
}

func TestRequestsCarryBasicAuthAndJSONHeaders(t *testing.T) {
	var seen *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"product":{"id":7,"handle":"basic"}}`))
	}))
	defer srv.Close()

	c, err := New("secret", "acme", WithBaseURL(srv.URL), WithUserAgent("chargify-test/1.0"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Product(context.Background(), 7); err != nil {
		t.Fatalf("Product: %v", err)
	}

	user, pass, ok := seen.BasicAuth()
	if !ok || user != "secret" || pass != "x" {
		t.Fatalf("basic auth = %q/%q ok=%v", user, pass, ok)
	}
	if ct := seen.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	if ua := seen.Header.Get("User-Agent"); ua != "chargify-test/1.0" {
		t.Fatalf("user agent = %q", ua)
	}
	if seen.URL.Path != "/products/7.json" {
		t.Fatalf("path = %q", seen.URL.Path)
	}
}

func TestInvalidIDsFailBeforeAnyRequest(t *testing.T) {
	var calls int
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("unexpected request")
	})
	c, err := New("key", "acme", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if _, err := c.Customer(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Customer(0): %v", err)
	}
	if _, _, err := c.Subscription(ctx, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Subscription(-1): %v", err)
	}
	if _, err := c.CreateCustomer(ctx, CustomerAttributes{FirstName: "Ada"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if _, err := c.UpdateCustomer(ctx, CustomerUpdate{Email: String("a@b.c")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("UpdateCustomer: %v", err)
	}
	if calls != 0 {
		t.Fatalf("transport called %d times", calls)
	}
}
