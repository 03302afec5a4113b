package chargify

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/will/chargify/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to one Chargify site. Its configuration is fixed at
// construction, so a Client may be shared between goroutines.
type Client struct {
	apiKey    string
	subdomain string
	baseURL   string
	userAgent string

	http   *http.Client
	rest   *resty.Client
	logger zerolog.Logger
}

// New constructs a Client for the site https://{subdomain}.chargify.com,
// authenticating with apiKey. Additional options can be provided via
// functional arguments.
func New(apiKey, subdomain string, opts ...Option) (*Client, error) {
	if apiKey == "" || subdomain == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		apiKey:    apiKey,
		subdomain: subdomain,
		baseURL:   siteURL(subdomain),
		http:      &http.Client{Timeout: 30 * time.Second},
		logger:    log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.rest = c.newRestClient()
	return c, nil
}

func siteURL(subdomain string) string {
	return "https://" + subdomain + ".chargify.com"
}

// newRestClient builds the per-instance resty client. Everything every request
// needs (base URL, basic auth, JSON content type) is set here once.
func (c *Client) newRestClient() *resty.Client {
	rc := resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetBasicAuth(c.apiKey, "x").
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{l: c.logger}).
		OnAfterResponse(recordResponse).
		OnError(recordError)
	if c.userAgent != "" {
		rc.SetHeader("User-Agent", c.userAgent)
	}
	// Overridden roots (chargifytest, local proxies) are often plain HTTP.
	if c.baseURL != siteURL(c.subdomain) {
		rc.SetDisableWarn(true)
	}
	return rc
}

// BaseURL returns the site root every request is issued against.
func (c *Client) BaseURL() string { return c.baseURL }

// APIKey returns the key used as the basic-auth username.
func (c *Client) APIKey() string { return c.apiKey }

// Subdomain returns the Chargify site subdomain.
func (c *Client) Subdomain() string { return c.subdomain }

// --------------------------------------------------------------------
// Customer operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCustomers returns one page of customers.
func (c *Client) ListCustomers(ctx context.Context, opts ListCustomersOptions) ([]Customer, error) {
	return api.ListCustomers(ctx, c.rest, opts)
}

// CustomerByChargifyID fetches a customer by the id Chargify assigned to it.
func (c *Client) CustomerByChargifyID(ctx context.Context, customerID int) (*Customer, error) {
	return api.GetCustomer(ctx, c.rest, customerID)
}

// Customer is an alias for CustomerByChargifyID.
func (c *Client) Customer(ctx context.Context, customerID int) (*Customer, error) {
	return c.CustomerByChargifyID(ctx, customerID)
}

// CustomerByReference fetches a customer by the reference your application
// assigned. The reference is query-escaped by the client, so pass it as is;
// an already escaped value ("a%20b") would be escaped twice.
func (c *Client) CustomerByReference(ctx context.Context, reference string) (*Customer, error) {
	return api.GetCustomerByReference(ctx, c.rest, reference)
}

// CreateCustomer creates a customer. FirstName, LastName and Email are
// required; Reference is optional but lets you look the customer up later
// with your own identifier.
func (c *Client) CreateCustomer(ctx context.Context, attrs CustomerAttributes) (*CustomerResult, error) {
	return api.CreateCustomer(ctx, c.rest, attrs)
}

// UpdateCustomer updates the customer identified by upd.ID. Only non-nil
// fields are sent; use String("") to clear one:
//
//	c.UpdateCustomer(ctx, chargify.CustomerUpdate{ID: 42, Organization: chargify.String("")})
func (c *Client) UpdateCustomer(ctx context.Context, upd CustomerUpdate) (*CustomerResult, error) {
	return api.UpdateCustomer(ctx, c.rest, upd)
}

// CustomerSubscriptions lists the subscriptions owned by a customer.
func (c *Client) CustomerSubscriptions(ctx context.Context, customerID int) ([]Subscription, error) {
	return api.ListCustomerSubscriptions(ctx, c.rest, customerID)
}

// --------------------------------------------------------------------
// Subscription operations - delegated to internal/api
// --------------------------------------------------------------------

// Subscription fetches a subscription. found is false, with a nil error,
// whenever Chargify answers with anything other than 200 OK.
func (c *Client) Subscription(ctx context.Context, subscriptionID int) (sub *Subscription, found bool, err error) {
	sub, found, err = api.GetSubscription(ctx, c.rest, subscriptionID)
	if err == nil && !found {
		c.logger.Debug().Int("subscription_id", subscriptionID).Msg("subscription not found")
	}
	return sub, found, err
}

// CreateSubscription signs up a new subscription. The result's Success is
// true only when Chargify answered 201 Created; check it before using the
// subscription.
func (c *Client) CreateSubscription(ctx context.Context, attrs SubscriptionAttributes) (*SubscriptionResult, error) {
	return c.logOutcome(api.CreateSubscription(ctx, c.rest, attrs))
}

// UpdateSubscription updates a subscription. Success is true only on 200 OK.
func (c *Client) UpdateSubscription(ctx context.Context, subscriptionID int, attrs SubscriptionAttributes) (*SubscriptionResult, error) {
	return c.logOutcome(api.UpdateSubscription(ctx, c.rest, subscriptionID, attrs))
}

// CancelSubscription cancels a subscription immediately with an optional
// message. Success is true only on 200 OK.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID int, message string) (*SubscriptionResult, error) {
	return c.logOutcome(api.CancelSubscription(ctx, c.rest, subscriptionID, message))
}

// ReactivateSubscription reactivates a canceled subscription. Success is
// true only on 200 OK.
func (c *Client) ReactivateSubscription(ctx context.Context, subscriptionID int) (*SubscriptionResult, error) {
	return c.logOutcome(api.ReactivateSubscription(ctx, c.rest, subscriptionID))
}

func (c *Client) logOutcome(res *SubscriptionResult, err error) (*SubscriptionResult, error) {
	if err == nil && !res.Success {
		c.logger.Warn().
			Int("status_code", res.StatusCode).
			Strs("errors", res.Errors()).
			Msg("chargify rejected subscription change")
	}
	return res, err
}

// --------------------------------------------------------------------
// Product operations - delegated to internal/api
// --------------------------------------------------------------------

// ListProducts returns the product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	return api.ListProducts(ctx, c.rest)
}

// Product fetches a product by id.
func (c *Client) Product(ctx context.Context, productID int) (*Product, error) {
	return api.GetProduct(ctx, c.rest, productID)
}

// ProductByHandle fetches a product by handle.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	return api.GetProductByHandle(ctx, c.rest, handle)
}
