package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	chargerr "github.com/will/chargify/internal/errors"
	"github.com/will/chargify/internal/types"
)

// ListCustomerSubscriptions returns every subscription owned by a customer.
func ListCustomerSubscriptions(ctx context.Context, rc *resty.Client, customerID int) (_ []types.Subscription, err error) {
	const op = "list customer subscriptions"
	if err := types.ValidateID(customerID, "customer id"); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/customers/%d/subscriptions.json", customerID)
	ctx, end := startSpan(ctx, op, http.MethodGet, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[types.Subscription](op, resp, types.KeySubscription)
}

// GetSubscription fetches a subscription. Any status other than 200 reports
// found=false with a nil error; the body is not parsed in that case.
func GetSubscription(ctx context.Context, rc *resty.Client, subscriptionID int) (_ *types.Subscription, found bool, err error) {
	const op = "get subscription"
	if err := types.ValidateID(subscriptionID, "subscription id"); err != nil {
		return nil, false, err
	}
	path := fmt.Sprintf("/subscriptions/%d.json", subscriptionID)
	ctx, end := startSpan(ctx, op, http.MethodGet, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, false, nil
	}
	env, err := decodeEnvelope(op, resp)
	if err != nil {
		return nil, false, err
	}
	var sub types.Subscription
	ok, err := env.Decode(types.KeySubscription, &sub)
	if err != nil {
		return nil, false, chargerr.NewUnexpectedResponse(op, resp.StatusCode(), err, resp.Body())
	}
	if !ok {
		return nil, false, nil
	}
	return &sub, true, nil
}

// CreateSubscription signs up a subscription. Success is true only on 201 Created.
func CreateSubscription(ctx context.Context, rc *resty.Client, attrs types.SubscriptionAttributes) (_ *types.SubscriptionResult, err error) {
	const op = "create subscription"
	ctx, end := startSpan(ctx, op, http.MethodPost, "/subscriptions.json")
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodPost, "/subscriptions.json", types.SubscriptionEnvelope{Subscription: attrs}, nil)
	if err != nil {
		return nil, err
	}
	return subscriptionResult(op, resp, http.StatusCreated)
}

// UpdateSubscription changes product, payment or billing attributes. Success is true only on 200.
func UpdateSubscription(ctx context.Context, rc *resty.Client, subscriptionID int, attrs types.SubscriptionAttributes) (_ *types.SubscriptionResult, err error) {
	const op = "update subscription"
	if err := types.ValidateID(subscriptionID, "subscription id"); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/subscriptions/%d.json", subscriptionID)
	ctx, end := startSpan(ctx, op, http.MethodPut, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodPut, path, types.SubscriptionEnvelope{Subscription: attrs}, nil)
	if err != nil {
		return nil, err
	}
	return subscriptionResult(op, resp, http.StatusOK)
}

// CancelSubscription cancels immediately, recording message as the reason.
func CancelSubscription(ctx context.Context, rc *resty.Client, subscriptionID int, message string) (_ *types.SubscriptionResult, err error) {
	const op = "cancel subscription"
	if err := types.ValidateID(subscriptionID, "subscription id"); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/subscriptions/%d.json", subscriptionID)
	ctx, end := startSpan(ctx, op, http.MethodDelete, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodDelete, path, types.NewCancellationEnvelope(message), nil)
	if err != nil {
		return nil, err
	}
	return subscriptionResult(op, resp, http.StatusOK)
}

// ReactivateSubscription restarts a canceled subscription. The request has no
// body. An empty response body yields a result with a nil Subscription;
// a non-JSON body is still an UnexpectedResponseError.
func ReactivateSubscription(ctx context.Context, rc *resty.Client, subscriptionID int) (_ *types.SubscriptionResult, err error) {
	const op = "reactivate subscription"
	if err := types.ValidateID(subscriptionID, "subscription id"); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/subscriptions/%d/reactivate.json", subscriptionID)
	ctx, end := startSpan(ctx, op, http.MethodPut, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodPut, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return subscriptionResult(op, resp, http.StatusOK)
}

func subscriptionResult(op string, resp *resty.Response, successCode int) (*types.SubscriptionResult, error) {
	env, err := decodeEnvelope(op, resp)
	if err != nil {
		return nil, err
	}
	res := &types.SubscriptionResult{
		Raw:        env,
		Success:    resp.StatusCode() == successCode,
		StatusCode: resp.StatusCode(),
	}
	var sub types.Subscription
	ok, err := env.Decode(types.KeySubscription, &sub)
	if err != nil {
		return nil, chargerr.NewUnexpectedResponse(op, resp.StatusCode(), err, resp.Body())
	}
	if ok {
		res.Subscription = &sub
	}
	return res, nil
}
