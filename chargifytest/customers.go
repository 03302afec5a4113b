package chargifytest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/will/chargify/internal/types"
)

type customerEnvelope struct {
	Customer *types.Customer `json:"customer"`
}

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	s.mu.Lock()
	ids := sortedIDs(s.customers)
	out := []customerEnvelope{}
	for i := (page - 1) * PageSize; i < len(ids) && i < page*PageSize; i++ {
		c := *s.customers[ids[i]]
		out = append(out, customerEnvelope{Customer: &c})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	c, ok := s.customers[pathID(r)]
	var cp types.Customer
	if ok {
		cp = *c
	}
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, customerEnvelope{Customer: &cp})
}

func (s *Server) lookupCustomer(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("reference")
	s.mu.Lock()
	var found *types.Customer
	for _, id := range sortedIDs(s.customers) {
		if c := s.customers[id]; c.Reference != "" && c.Reference == ref {
			cp := *c
			found = &cp
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, customerEnvelope{Customer: found})
}

func decodeCustomerAttrs(r *http.Request) (types.CustomerAttributes, error) {
	var env types.CustomerEnvelope
	err := json.NewDecoder(r.Body).Decode(&env)
	return env.Customer, err
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeCustomerAttrs(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody("Invalid JSON: "+err.Error()))
		return
	}
	if msgs := customerErrors(attrs); len(msgs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody(msgs...))
		return
	}

	s.mu.Lock()
	if attrs.Reference != "" && s.referenceTaken(attrs.Reference, 0) {
		s.mu.Unlock()
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody("Reference: must be unique - that value has been taken."))
		return
	}
	c := s.insertCustomer(attrs)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, customerEnvelope{Customer: &c})
}

func (s *Server) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var env types.CustomerUpdateEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody("Invalid JSON: "+err.Error()))
		return
	}
	upd := env.Customer

	s.mu.Lock()
	id := pathID(r)
	c, ok := s.customers[id]
	if !ok {
		s.mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
		return
	}
	next := *c
	applyCustomerUpdate(&next, upd)
	if msgs := customerErrors(attrsOf(next)); len(msgs) > 0 {
		s.mu.Unlock()
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody(msgs...))
		return
	}
	if next.Reference != "" && s.referenceTaken(next.Reference, id) {
		s.mu.Unlock()
		writeJSON(w, http.StatusUnprocessableEntity, errorsBody("Reference: must be unique - that value has been taken."))
		return
	}
	next.UpdatedAt = time.Now().UTC()
	*c = next
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, customerEnvelope{Customer: &next})
}

func (s *Server) customerSubscriptions(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	if _, ok := s.customers[id]; !ok {
		s.mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
		return
	}
	out := []subscriptionEnvelope{}
	for _, sid := range sortedIDs(s.subscriptions) {
		if sub := s.subscriptions[sid]; sub.Customer.ID == id {
			cp := *sub
			out = append(out, subscriptionEnvelope{Subscription: &cp})
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

// insertCustomer must be called with s.mu held.
func (s *Server) insertCustomer(attrs types.CustomerAttributes) types.Customer {
	now := time.Now().UTC()
	c := &types.Customer{ID: s.allocID(), CreatedAt: now, UpdatedAt: now}
	applyCustomerAttrs(c, attrs)
	s.customers[c.ID] = c
	return *c
}

// referenceTaken must be called with s.mu held.
func (s *Server) referenceTaken(ref string, except int) bool {
	for id, c := range s.customers {
		if id != except && c.Reference == ref {
			return true
		}
	}
	return false
}

func customerErrors(attrs types.CustomerAttributes) []string {
	var msgs []string
	if strings.TrimSpace(attrs.FirstName) == "" {
		msgs = append(msgs, "First name: cannot be blank.")
	}
	if strings.TrimSpace(attrs.LastName) == "" {
		msgs = append(msgs, "Last name: cannot be blank.")
	}
	if strings.TrimSpace(attrs.Email) == "" {
		msgs = append(msgs, "Email address: cannot be blank.")
	}
	return msgs
}

func applyCustomerAttrs(c *types.Customer, a types.CustomerAttributes) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.FirstName, a.FirstName)
	set(&c.LastName, a.LastName)
	set(&c.Email, a.Email)
	set(&c.Organization, a.Organization)
	set(&c.Reference, a.Reference)
	set(&c.Phone, a.Phone)
	set(&c.Address, a.Address)
	set(&c.Address2, a.Address2)
	set(&c.City, a.City)
	set(&c.State, a.State)
	set(&c.Zip, a.Zip)
	set(&c.Country, a.Country)
}

// applyCustomerUpdate writes every field present in u, including empty ones.
func applyCustomerUpdate(c *types.Customer, u types.CustomerUpdate) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&c.FirstName, u.FirstName)
	set(&c.LastName, u.LastName)
	set(&c.Email, u.Email)
	set(&c.Organization, u.Organization)
	set(&c.Reference, u.Reference)
	set(&c.Phone, u.Phone)
	set(&c.Address, u.Address)
	set(&c.Address2, u.Address2)
	set(&c.City, u.City)
	set(&c.State, u.State)
	set(&c.Zip, u.Zip)
	set(&c.Country, u.Country)
}

func attrsOf(c types.Customer) types.CustomerAttributes {
	return types.CustomerAttributes{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email}
}
