package chargify

// Functional options accepted by New.

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Option configures a Client during construction in New.
//
// Options run in order against the underlying *http.Client before the resty
// client is built from it, so WithHTTPClient should come first when combined
// with transport-wrapping options such as WithDebugLogging or WithTracing.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout bounds the
// total time spent on a single HTTP request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client.
//
// hc is used in place, not copied: resty installs a default Transport when
// hc.Transport is nil, and WithDebugLogging and WithTracing wrap hc.Transport.
// Pass a dedicated client if hc is shared elsewhere.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// Authorization header and full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); already {
				return nil
			}
			c.http.Transport = &debugTransport{base: c.http.Transport, logger: &c.logger}
		}
		return nil
	}
}

// WithLogger sets the logger used for debug dumps and soft-failure warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithBaseURL points the client at a different root, such as a proxy or the
// chargifytest fake. BaseURL reports the override.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base url %q: scheme and host are required", raw)
		}
		c.baseURL = strings.TrimRight(raw, "/")
		return nil
	}
}

// WithTracing wraps the transport with otelhttp so every HTTP round trip gets
// its own span beneath the per-operation span.
func WithTracing(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = otelhttp.NewTransport(base)
		}
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}
