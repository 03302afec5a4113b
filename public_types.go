package chargify

import "github.com/will/chargify/internal/types"

// Public type aliases so SDK consumers can import only the chargify package.
type (
	// Requests
	CustomerAttributes     = types.CustomerAttributes
	CustomerUpdate         = types.CustomerUpdate
	SubscriptionAttributes = types.SubscriptionAttributes
	CreditCardAttributes   = types.CreditCardAttributes
	ListCustomersOptions   = types.ListCustomersOptions

	// Domain entities
	Customer      = types.Customer
	Subscription  = types.Subscription
	Product       = types.Product
	ProductFamily = types.ProductFamily
	CreditCard    = types.CreditCard

	// Responses
	Envelope           = types.Envelope
	CustomerResult     = types.CustomerResult
	SubscriptionResult = types.SubscriptionResult
)

// Subscription states.
const (
	StateTrialing    = types.StateTrialing
	StateAssessing   = types.StateAssessing
	StateActive      = types.StateActive
	StateSoftFailure = types.StateSoftFailure
	StatePastDue     = types.StatePastDue
	StateSuspended   = types.StateSuspended
	StateCanceled    = types.StateCanceled
	StateUnpaid      = types.StateUnpaid
	StateExpired     = types.StateExpired
)

// String returns a pointer to s, for the optional fields of CustomerUpdate.
func String(s string) *string { return types.String(s) }
