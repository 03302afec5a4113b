package chargify

import (
	"errors"

	chargerr "github.com/will/chargify/internal/errors"
	"github.com/will/chargify/internal/types"
)

// ErrMissingCredentials is returned by New when the API key or subdomain is empty.
var ErrMissingCredentials = errors.New("chargify: api key and subdomain are required")

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotFound     = types.ErrNotFound
	ErrInvalidInput = types.ErrInvalidInput
)

type (
	// UnexpectedResponseError reports a response body that was not the JSON
	// Chargify should have sent. Body holds the raw response.
	UnexpectedResponseError = chargerr.UnexpectedResponseError

	// APIError reports a non-2xx response that carried no entity.
	APIError = chargerr.APIError
)

// IsUnexpectedResponse reports whether err is, or wraps, an UnexpectedResponseError.
func IsUnexpectedResponse(err error) bool { return chargerr.IsUnexpectedResponse(err) }

// IsNotFound reports whether err means the requested entity does not exist.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
