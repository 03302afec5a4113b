package types

import "time"

// ------------------------------
// Request Types
// ------------------------------

// CustomerAttributes holds the fields of a new customer. Empty fields are
// omitted from the body.
type CustomerAttributes struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Organization string `json:"organization,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Address2     string `json:"address_2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Country      string `json:"country,omitempty"`
}

// CustomerUpdate changes the customer selected by ID. Only non-nil fields are
// sent; a pointer to "" clears the field. ID is never serialized.
type CustomerUpdate struct {
	ID           int     `json:"-"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Reference    *string `json:"reference,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Address2     *string `json:"address_2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Zip          *string `json:"zip,omitempty"`
	Country      *string `json:"country,omitempty"`
}

// String returns a pointer to s for use in CustomerUpdate.
func String(s string) *string { return &s }

// CreditCardAttributes carries raw card data for subscription signup.
type CreditCardAttributes struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	FullNumber      string `json:"full_number"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	CVV             string `json:"cvv,omitempty"`
	BillingAddress  string `json:"billing_address,omitempty"`
	BillingAddress2 string `json:"billing_address_2,omitempty"`
	BillingCity     string `json:"billing_city,omitempty"`
	BillingState    string `json:"billing_state,omitempty"`
	BillingZip      string `json:"billing_zip,omitempty"`
	BillingCountry  string `json:"billing_country,omitempty"`
}

// SubscriptionAttributes holds the fields accepted on subscription create and
// update. A product is selected by handle or id, a customer by id, reference
// or inline attributes.
type SubscriptionAttributes struct {
	ProductHandle        string                `json:"product_handle,omitempty"`
	ProductID            int                   `json:"product_id,omitempty"`
	CustomerID           int                   `json:"customer_id,omitempty"`
	CustomerReference    string                `json:"customer_reference,omitempty"`
	CustomerAttributes   *CustomerAttributes   `json:"customer_attributes,omitempty"`
	CreditCardAttributes *CreditCardAttributes `json:"credit_card_attributes,omitempty"`
	CouponCode           string                `json:"coupon_code,omitempty"`
	NextBillingAt        *time.Time            `json:"next_billing_at,omitempty"`
}

// ListCustomersOptions controls the customer listing. Page is sent only when > 0.
type ListCustomersOptions struct {
	Page int
}

// CustomerEnvelope is the wire wrapper for customer creation.
type CustomerEnvelope struct {
	Customer CustomerAttributes `json:"customer"`
}

// CustomerUpdateEnvelope is the wire wrapper for customer updates.
type CustomerUpdateEnvelope struct {
	Customer CustomerUpdate `json:"customer"`
}

// SubscriptionEnvelope is the wire wrapper for subscription writes.
type SubscriptionEnvelope struct {
	Subscription SubscriptionAttributes `json:"subscription"`
}

// CancellationEnvelope is the DELETE body for a subscription cancel.
type CancellationEnvelope struct {
	Subscription struct {
		CancellationMessage string `json:"cancellation_message"`
	} `json:"subscription"`
}

// NewCancellationEnvelope wraps message for a cancel request.
func NewCancellationEnvelope(message string) CancellationEnvelope {
	var env CancellationEnvelope
	env.Subscription.CancellationMessage = message
	return env
}
