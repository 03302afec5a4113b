// Package errors defines the typed failures surfaced by the client SDK.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/will/chargify/internal/types"
)

// UnexpectedResponseError reports a response body that could not be parsed as
// the JSON shape the endpoint returns. It keeps the raw body so upstream API
// misbehaviour can be diagnosed.
type UnexpectedResponseError struct {
	Operation  string
	StatusCode int
	Message    string // parser message
	Body       string // raw response body
}

// Error implements the error interface.
func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("%s: could not parse JSON (HTTP %d). Parser said: %s. Chargify's raw response: %s",
		e.Operation, e.StatusCode, e.Message, e.Body)
}

// APIError reports a non-2xx response whose body carried no entity.
type APIError struct {
	Operation  string
	StatusCode int
	Messages   []string // Chargify's "errors" list, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Operation, e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("%s: HTTP %d", e.Operation, e.StatusCode)
}

// Unwrap maps 404 onto the shared not-found sentinel.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return types.ErrNotFound
	}
	return nil
}

// IsUnexpectedResponse reports whether err wraps an UnexpectedResponseError.
func IsUnexpectedResponse(err error) bool {
	var target *UnexpectedResponseError
	return stderrors.As(err, &target)
}
