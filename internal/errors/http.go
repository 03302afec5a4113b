package errors

import (
	"fmt"
	"net/http"

	"github.com/will/chargify/internal/types"
)

// NewUnexpectedResponse builds the parse-failure error for operation.
func NewUnexpectedResponse(operation string, statusCode int, parseErr error, body []byte) *UnexpectedResponseError {
	msg := ""
	if parseErr != nil {
		msg = parseErr.Error()
	}
	return &UnexpectedResponseError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    msg,
		Body:       string(body),
	}
}

// MissingEntity classifies a response whose envelope lacked the expected key.
// Successful statuses and 404 yield types.ErrNotFound; anything else becomes
// an APIError carrying Chargify's error messages.
func MissingEntity(operation string, statusCode int, env types.Envelope) error {
	if statusCode >= 200 && statusCode < 300 {
		return fmt.Errorf("%s: %w", operation, types.ErrNotFound)
	}
	return &APIError{
		Operation:  operation,
		StatusCode: statusCode,
		Messages:   env.Errors(),
	}
}

// NewNetworkError wraps a transport failure. The cause stays reachable
// through errors.Is / errors.As.
func NewNetworkError(operation string, err error) error {
	return fmt.Errorf("%s: %w", operation, err)
}

// IsSuccess reports whether code is in the 2xx range.
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
