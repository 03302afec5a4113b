package types

import (
	"bytes"
	"encoding/json"
)

// ------------------------------
// Response Types
// ------------------------------

// Envelope is a decoded top-level JSON object keyed by its member names.
// Chargify wraps every entity in a single-key envelope such as
// {"customer": {...}}; when the expected key is missing the envelope itself
// is handed back so callers can inspect what the API actually sent.
type Envelope map[string]json.RawMessage

// Envelope keys used by the API.
const (
	KeyCustomer     = "customer"
	KeySubscription = "subscription"
	KeyProduct      = "product"
	KeyErrors       = "errors"
)

// Has reports whether key is present and holds something other than null or
// an empty object.
func (e Envelope) Has(key string) bool {
	raw, ok := e[key]
	if !ok {
		return false
	}
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return false
	case bytes.Equal(trimmed, []byte("null")):
		return false
	case trimmed[0] == '{' && len(bytes.TrimSpace(trimmed[1:len(trimmed)-1])) == 0:
		return false
	}
	return true
}

// Decode unmarshals the member at key into v. It returns false without
// touching v when the key is absent or empty.
func (e Envelope) Decode(key string, v any) (bool, error) {
	if !e.Has(key) {
		return false, nil
	}
	if err := json.Unmarshal(e[key], v); err != nil {
		return false, err
	}
	return true, nil
}

// Errors returns the messages under "errors". Chargify sends either a list
// of strings or a single string there.
func (e Envelope) Errors() []string {
	raw, ok := e[KeyErrors]
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// CustomerResult is the outcome of a customer write. Customer is nil when the
// response carried no customer; Raw then holds the body as sent.
type CustomerResult struct {
	Customer   *Customer
	Raw        Envelope
	StatusCode int
}

// SubscriptionResult is the outcome of a subscription write. Success is
// derived from the HTTP status of the call, not from the response body.
type SubscriptionResult struct {
	Subscription *Subscription
	Raw          Envelope
	Success      bool
	StatusCode   int
}

// Errors is a shortcut for Raw.Errors().
func (r *SubscriptionResult) Errors() []string {
	if r == nil {
		return nil
	}
	return r.Raw.Errors()
}

// Errors is a shortcut for Raw.Errors().
func (r *CustomerResult) Errors() []string {
	if r == nil {
		return nil
	}
	return r.Raw.Errors()
}
