// Package chargifytest provides an in-memory Chargify API for tests.
//
// The fake covers the endpoints the chargify client uses: customers,
// subscriptions and the product catalog. It enforces basic auth, assigns
// ids, validates the required customer fields and moves subscriptions
// between the active and canceled states.
package chargifytest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/will/chargify/internal/types"
)

// DefaultAPIKey is the key NewServer accepts unless overridden.
const DefaultAPIKey = "test-api-key"

// PageSize is the number of customers returned per page.
const PageSize = 50

// RecordedRequest is a request as received by the fake.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

type fault struct {
	status int
	body   string
}

// Server is a running fake. Point a client at URL with chargify.WithBaseURL.
type Server struct {
	*httptest.Server
	APIKey string

	mu            sync.Mutex
	nextID        int
	customers     map[int]*types.Customer
	subscriptions map[int]*types.Subscription
	products      map[int]*types.Product
	requests      []RecordedRequest
	faults        []fault
}

// NewServer starts a fake seeded with two products, "basic" and "pro".
func NewServer() *Server {
	s := &Server{
		APIKey:        DefaultAPIKey,
		nextID:        100,
		customers:     map[int]*types.Customer{},
		subscriptions: map[int]*types.Subscription{},
		products:      map[int]*types.Product{},
	}
	s.AddProduct(types.Product{Handle: "basic", Name: "Basic", PriceInCents: 1000, Interval: 1, IntervalUnit: "month"})
	s.AddProduct(types.Product{Handle: "pro", Name: "Pro", PriceInCents: 5000, Interval: 1, IntervalUnit: "month"})
	s.Server = httptest.NewServer(s.router())
	return s
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/customers.json", s.listCustomers).Methods(http.MethodGet)
	r.HandleFunc("/customers.json", s.createCustomer).Methods(http.MethodPost)
	r.HandleFunc("/customers/lookup.json", s.lookupCustomer).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id:[0-9]+}.json", s.getCustomer).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id:[0-9]+}.json", s.updateCustomer).Methods(http.MethodPut)
	r.HandleFunc("/customers/{id:[0-9]+}/subscriptions.json", s.customerSubscriptions).Methods(http.MethodGet)

	r.HandleFunc("/subscriptions.json", s.createSubscription).Methods(http.MethodPost)
	r.HandleFunc("/subscriptions/{id:[0-9]+}.json", s.getSubscription).Methods(http.MethodGet)
	r.HandleFunc("/subscriptions/{id:[0-9]+}.json", s.updateSubscription).Methods(http.MethodPut)
	r.HandleFunc("/subscriptions/{id:[0-9]+}.json", s.cancelSubscription).Methods(http.MethodDelete)
	r.HandleFunc("/subscriptions/{id:[0-9]+}/reactivate.json", s.reactivateSubscription).Methods(http.MethodPut)

	r.HandleFunc("/products.json", s.listProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/handle/{handle}.json", s.getProductByHandle).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}.json", s.getProduct).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorsBody("Not Found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorsBody("Method Not Allowed"))
	})

	// Wrapped outside the router so unmatched paths and methods are recorded,
	// faulted and authenticated too.
	return s.record(s.injectFaults(s.basicAuth(r)))
}

// ------------------------------
// Test controls
// ------------------------------

// AddProduct adds p to the catalog, assigning an id when p.ID is zero.
func (s *Server) AddProduct(p types.Product) types.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.allocID()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	s.products[p.ID] = &p
	return p
}

// FailNext makes the next request answer with status and a raw body,
// bypassing routing. Calls queue up.
func (s *Server) FailNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = append(s.faults, fault{status: status, body: body})
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or the zero value.
func (s *Server) LastRequest() RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}
	}
	return s.requests[len(s.requests)-1]
}

// ------------------------------
// Middleware
// ------------------------------

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFaults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var f *fault
		if len(s.faults) > 0 {
			f = &s.faults[0]
			s.faults = s.faults[1:]
		}
		s.mu.Unlock()
		if f != nil {
			w.WriteHeader(f.status)
			_, _ = io.WriteString(w, f.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.APIKey || pass != "x" {
			w.Header().Set("WWW-Authenticate", `Basic realm="Chargify API"`)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, "HTTP Basic: Access denied.\n")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------
// Helpers
// ------------------------------

// allocID must be called with s.mu held.
func (s *Server) allocID() int {
	s.nextID++
	return s.nextID
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorsBody(msgs ...string) map[string][]string {
	return map[string][]string{types.KeyErrors: msgs}
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
