package chargifytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/will/chargify/internal/types"
)

type subscriptionEnvelope struct {
	Subscription *types.Subscription `json:"subscription"`
}

func (s *Server) getSubscription(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sub, ok := s.subscriptions[pathID(r)]
	var cp types.Subscription
	if ok {
		cp = *sub
	}
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionEnvelope{Subscription: &cp})
}

func decodeSubscriptionAttrs(r *http.Request) (types.SubscriptionAttributes, error) {
	var env types.SubscriptionEnvelope
	err := json.NewDecoder(r.Body).Decode(&env)
	return env.Subscription, err
}

func (s *Server) createSubscription(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeSubscriptionAttrs(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody("Invalid JSON: "+err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(attrs.ProductID, attrs.ProductHandle)
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody("Product: must be specified."))
		return
	}
	customer, msgs := s.resolveCustomer(attrs)
	if len(msgs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody(msgs...))
		return
	}

	now := time.Now().UTC()
	periodEnd := now.AddDate(0, 1, 0)
	sub := &types.Subscription{
		ID:                     s.allocID(),
		State:                  types.StateActive,
		CurrentPeriodStartedAt: &now,
		CurrentPeriodEndsAt:    &periodEnd,
		NextAssessmentAt:       &periodEnd,
		ActivatedAt:            &now,
		CouponCode:             attrs.CouponCode,
		Customer:               *customer,
		Product:                *product,
		CreditCard:             maskCard(attrs.CreditCardAttributes, customer.ID),
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if attrs.NextBillingAt != nil {
		next := attrs.NextBillingAt.UTC()
		sub.NextAssessmentAt = &next
	}
	s.subscriptions[sub.ID] = sub
	cp := *sub

	writeJSON(w, http.StatusCreated, subscriptionEnvelope{Subscription: &cp})
}

func (s *Server) updateSubscription(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeSubscriptionAttrs(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody("Invalid JSON: "+err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[pathID(r)]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if attrs.ProductID != 0 || attrs.ProductHandle != "" {
		product, ok := s.findProduct(attrs.ProductID, attrs.ProductHandle)
		if !ok {
			writeJSON(w, http.StatusUnprocessableEntity, errorsBody("Product: could not be found."))
			return
		}
		sub.Product = *product
	}
	if attrs.CreditCardAttributes != nil {
		sub.CreditCard = maskCard(attrs.CreditCardAttributes, sub.Customer.ID)
	}
	if attrs.NextBillingAt != nil {
		next := attrs.NextBillingAt.UTC()
		sub.NextAssessmentAt = &next
	}
	sub.UpdatedAt = time.Now().UTC()
	cp := *sub

	writeJSON(w, http.StatusOK, subscriptionEnvelope{Subscription: &cp})
}

func (s *Server) cancelSubscription(w http.ResponseWriter, r *http.Request) {
	var env types.CancellationEnvelope
	_ = json.NewDecoder(r.Body).Decode(&env)

	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[pathID(r)]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if sub.State == types.StateCanceled {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody("The subscription is already canceled."))
		return
	}
	now := time.Now().UTC()
	sub.State = types.StateCanceled
	sub.CanceledAt = &now
	sub.CancellationMessage = env.Subscription.CancellationMessage
	sub.UpdatedAt = now
	cp := *sub

	writeJSON(w, http.StatusOK, subscriptionEnvelope{Subscription: &cp})
}

func (s *Server) reactivateSubscription(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[pathID(r)]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if sub.State != types.StateCanceled && sub.State != types.StateExpired {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody(fmt.Sprintf("Cannot reactivate a subscription that is %s.", sub.State)))
		return
	}
	now := time.Now().UTC()
	sub.State = types.StateActive
	sub.CanceledAt = nil
	sub.CancellationMessage = ""
	sub.ActivatedAt = &now
	sub.UpdatedAt = now
	cp := *sub

	writeJSON(w, http.StatusOK, subscriptionEnvelope{Subscription: &cp})
}

// resolveCustomer must be called with s.mu held.
func (s *Server) resolveCustomer(attrs types.SubscriptionAttributes) (*types.Customer, []string) {
	switch {
	case attrs.CustomerID != 0:
		if c, ok := s.customers[attrs.CustomerID]; ok {
			return c, nil
		}
		return nil, []string{"Customer: could not be found."}
	case attrs.CustomerReference != "":
		for _, id := range sortedIDs(s.customers) {
			if c := s.customers[id]; c.Reference == attrs.CustomerReference {
				return c, nil
			}
		}
		return nil, []string{"Customer: could not be found."}
	case attrs.CustomerAttributes != nil:
		if msgs := customerErrors(*attrs.CustomerAttributes); len(msgs) > 0 {
			return nil, msgs
		}
		c := s.insertCustomer(*attrs.CustomerAttributes)
		return s.customers[c.ID], nil
	default:
		return nil, []string{"Customer: must be specified."}
	}
}

// findProduct must be called with s.mu held.
func (s *Server) findProduct(id int, handle string) (*types.Product, bool) {
	if id != 0 {
		p, ok := s.products[id]
		return p, ok
	}
	for _, pid := range sortedIDs(s.products) {
		if p := s.products[pid]; handle != "" && p.Handle == handle {
			return p, true
		}
	}
	return nil, false
}

func maskCard(cc *types.CreditCardAttributes, customerID int) *types.CreditCard {
	if cc == nil {
		return nil
	}
	last4 := cc.FullNumber
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return &types.CreditCard{
		FirstName:        cc.FirstName,
		LastName:         cc.LastName,
		MaskedCardNumber: strings.Repeat("X", 12) + last4,
		CardType:         "bogus",
		ExpirationMonth:  cc.ExpirationMonth,
		ExpirationYear:   cc.ExpirationYear,
		CustomerID:       customerID,
	}
}
