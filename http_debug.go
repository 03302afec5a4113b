package chargify

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport logs full request and response dumps at debug level.
//
// Enable it with WithDebugLogging(true), or without code changes by setting
// CHARGIFY_DEBUG=true or DEBUG=true.
//
// Dumps contain the basic-auth header (your API key) and customer data, so
// keep it out of production.
type debugTransport struct {
	base   http.RoundTripper
	logger *zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	l := dt.logger

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		l.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		l.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		l.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether CHARGIFY_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("CHARGIFY_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
