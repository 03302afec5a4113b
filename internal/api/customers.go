package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	chargerr "github.com/will/chargify/internal/errors"
	"github.com/will/chargify/internal/types"
)

// ListCustomers returns one page of customers.
func ListCustomers(ctx context.Context, rc *resty.Client, opts types.ListCustomersOptions) (_ []types.Customer, err error) {
	const op = "list customers"
	var query map[string]string
	if opts.Page > 0 {
		query = map[string]string{"page": strconv.Itoa(opts.Page)}
	}
	ctx, end := startSpan(ctx, op, http.MethodGet, "/customers.json")
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodGet, "/customers.json", nil, query)
	if err != nil {
		return nil, err
	}
	return unwrapList[types.Customer](op, resp, types.KeyCustomer)
}

// GetCustomer fetches a customer by its Chargify id.
func GetCustomer(ctx context.Context, rc *resty.Client, customerID int) (_ *types.Customer, err error) {
	const op = "get customer"
	if err := types.ValidateID(customerID, "customer id"); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/customers/%d.json", customerID)
	ctx, end := startSpan(ctx, op, http.MethodGet, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapOne[types.Customer](op, resp, types.KeyCustomer)
}

// GetCustomerByReference fetches a customer by the caller-assigned reference.
// The reference is query-escaped here; pass it unescaped or it is escaped twice.
func GetCustomerByReference(ctx context.Context, rc *resty.Client, reference string) (_ *types.Customer, err error) {
	const op = "get customer by reference"
	if err := types.ValidatePresent(reference, "reference"); err != nil {
		return nil, err
	}
	ctx, end := startSpan(ctx, op, http.MethodGet, "/customers/lookup.json")
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodGet, "/customers/lookup.json", nil, map[string]string{"reference": reference})
	if err != nil {
		return nil, err
	}
	return unwrapOne[types.Customer](op, resp, types.KeyCustomer)
}

// CreateCustomer posts a new customer. first_name, last_name and email are required.
func CreateCustomer(ctx context.Context, rc *resty.Client, attrs types.CustomerAttributes) (_ *types.CustomerResult, err error) {
	const op = "create customer"
	if err := types.ValidateNewCustomer(attrs); err != nil {
		return nil, err
	}
	ctx, end := startSpan(ctx, op, http.MethodPost, "/customers.json")
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodPost, "/customers.json", types.CustomerEnvelope{Customer: attrs}, nil)
	if err != nil {
		return nil, err
	}
	return customerResult(op, resp)
}

// UpdateCustomer puts the non-nil fields of upd to the customer selected by upd.ID.
// A field pointing at "" is sent as "" and clears the value on Chargify.
func UpdateCustomer(ctx context.Context, rc *resty.Client, upd types.CustomerUpdate) (_ *types.CustomerResult, err error) {
	const op = "update customer"
	if err := types.ValidateCustomerUpdate(upd); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/customers/%d.json", upd.ID)
	ctx, end := startSpan(ctx, op, http.MethodPut, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodPut, path, types.CustomerUpdateEnvelope{Customer: upd}, nil)
	if err != nil {
		return nil, err
	}
	return customerResult(op, resp)
}

func customerResult(op string, resp *resty.Response) (*types.CustomerResult, error) {
	env, err := decodeEnvelope(op, resp)
	if err != nil {
		return nil, err
	}
	res := &types.CustomerResult{Raw: env, StatusCode: resp.StatusCode()}
	var c types.Customer
	ok, err := env.Decode(types.KeyCustomer, &c)
	if err != nil {
		return nil, chargerr.NewUnexpectedResponse(op, resp.StatusCode(), err, resp.Body())
	}
	if ok {
		res.Customer = &c
	}
	return res, nil
}
