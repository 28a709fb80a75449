// Package searchtest provides an in-process stand-in for the remote search
// service, for tests and local development. It replays configured response
// envelopes and records the wire request it received, so tests can assert
// on both sides of the boundary.
package searchtest

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/quaero-io/quaero/internal/transport/rest"
)

// Server is a fake search service. The zero value is not usable; create
// one with New.
type Server struct {
	mu        sync.Mutex
	envelopes map[string]*rest.Envelope
	failState *failure

	lastIndex   string
	lastRequest *rest.SearchRequest

	apiKey string
}

type failure struct {
	status  int
	message string
}

// New creates a fake server with no configured responses. Unconfigured
// indexes answer 404.
func New() *Server {
	return &Server{envelopes: make(map[string]*rest.Envelope)}
}

// RequireAPIKey makes the server reject requests whose api-key header does
// not match key.
func (s *Server) RequireAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

// SetEnvelope configures the envelope replayed for searches against index.
func (s *Server) SetEnvelope(index string, env *rest.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envelopes[index] = env
	s.failState = nil
}

// FailWith makes every search answer the given status and error message
// until SetEnvelope is called again.
func (s *Server) FailWith(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failState = &failure{status: status, message: message}
}

// LastRequest returns the most recently received wire request and its
// index, or ok=false when no search has been served yet.
func (s *Server) LastRequest() (index string, req *rest.SearchRequest, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRequest == nil {
		return "", nil, false
	}
	return s.lastIndex, s.lastRequest, true
}

// Handler returns the HTTP handler implementing the service surface the
// SDK talks to.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/indexes/{index}/docs/search", s.handleSearch)
	return r
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req rest.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed search request: "+err.Error())
		return
	}

	index := chi.URLParam(r, "index")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastIndex = index
	s.lastRequest = &req

	if s.apiKey != "" && r.Header.Get("api-key") != s.apiKey {
		writeError(w, http.StatusForbidden, "invalid api key")
		return
	}
	if s.failState != nil {
		writeError(w, s.failState.status, s.failState.message)
		return
	}

	env, found := s.envelopes[index]
	if !found {
		writeError(w, http.StatusNotFound, "index "+index+" not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(env)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"message": message},
	})
}
