package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Customer represents a Chargify customer record.
type Customer struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Organization string    `json:"organization,omitempty"`
	Reference    string    `json:"reference,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Address2     string    `json:"address_2,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Zip          string    `json:"zip,omitempty"`
	Country      string    `json:"country,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductFamily groups related products in the catalog.
type ProductFamily struct {
	ID             int    `json:"id"`
	Handle         string `json:"handle"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	AccountingCode string `json:"accounting_code,omitempty"`
}

// Product is a catalog entry. Products are read-only through this client.
type Product struct {
	ID                     int            `json:"id"`
	Handle                 string         `json:"handle"`
	Name                   string         `json:"name"`
	Description            string         `json:"description,omitempty"`
	AccountingCode         string         `json:"accounting_code,omitempty"`
	PriceInCents           int64          `json:"price_in_cents"`
	Interval               int            `json:"interval"`
	IntervalUnit           string         `json:"interval_unit"`
	InitialChargeInCents   *int64         `json:"initial_charge_in_cents,omitempty"`
	TrialPriceInCents      *int64         `json:"trial_price_in_cents,omitempty"`
	TrialInterval          *int           `json:"trial_interval,omitempty"`
	TrialIntervalUnit      string         `json:"trial_interval_unit,omitempty"`
	ExpirationInterval     *int           `json:"expiration_interval,omitempty"`
	ExpirationIntervalUnit string         `json:"expiration_interval_unit,omitempty"`
	RequireCreditCard      bool           `json:"require_credit_card"`
	RequestCreditCard      bool           `json:"request_credit_card"`
	ReturnURL              string         `json:"return_url,omitempty"`
	ReturnParams           string         `json:"return_params,omitempty"`
	ProductFamily          *ProductFamily `json:"product_family,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	ArchivedAt             *time.Time     `json:"archived_at,omitempty"`
}

// CreditCard is the masked payment profile attached to a subscription.
type CreditCard struct {
	ID               int    `json:"id,omitempty"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	MaskedCardNumber string `json:"masked_card_number"`
	CardType         string `json:"card_type"`
	ExpirationMonth  int    `json:"expiration_month"`
	ExpirationYear   int    `json:"expiration_year"`
	CustomerID       int    `json:"customer_id,omitempty"`
}

// Subscription ties a customer to a product.
type Subscription struct {
	ID                     int         `json:"id"`
	State                  string      `json:"state"`
	BalanceInCents         int64       `json:"balance_in_cents"`
	CurrentPeriodStartedAt *time.Time  `json:"current_period_started_at,omitempty"`
	CurrentPeriodEndsAt    *time.Time  `json:"current_period_ends_at,omitempty"`
	NextAssessmentAt       *time.Time  `json:"next_assessment_at,omitempty"`
	TrialStartedAt         *time.Time  `json:"trial_started_at,omitempty"`
	TrialEndedAt           *time.Time  `json:"trial_ended_at,omitempty"`
	ActivatedAt            *time.Time  `json:"activated_at,omitempty"`
	ExpiresAt              *time.Time  `json:"expires_at,omitempty"`
	CanceledAt             *time.Time  `json:"canceled_at,omitempty"`
	CancellationMessage    string      `json:"cancellation_message,omitempty"`
	CancelAtEndOfPeriod    bool        `json:"cancel_at_end_of_period"`
	CouponCode             string      `json:"coupon_code,omitempty"`
	Customer               Customer    `json:"customer"`
	Product                Product     `json:"product"`
	CreditCard             *CreditCard `json:"credit_card,omitempty"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
}

// Subscription states reported by Chargify.
const (
	StateTrialing    = "trialing"
	StateAssessing   = "assessing"
	StateActive      = "active"
	StateSoftFailure = "soft_failure"
	StatePastDue     = "past_due"
	StateSuspended   = "suspended"
	StateCanceled    = "canceled"
	StateUnpaid      = "unpaid"
	StateExpired     = "expired"
)
