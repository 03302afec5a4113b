package chargifytest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/will/chargify/internal/types"
)

type productEnvelope struct {
	Product *types.Product `json:"product"`
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := []productEnvelope{}
	for _, id := range sortedIDs(s.products) {
		p := *s.products[id]
		out = append(out, productEnvelope{Product: &p})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p, ok := s.findProduct(pathID(r), "")
	var cp types.Product
	if ok {
		cp = *p
	}
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, productEnvelope{Product: &cp})
}

func (s *Server) getProductByHandle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p, ok := s.findProduct(0, mux.Vars(r)["handle"])
	var cp types.Product
	if ok {
		cp = *p
	}
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, productEnvelope{Product: &cp})
}
