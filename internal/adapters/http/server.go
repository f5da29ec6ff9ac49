// Package http exposes the planner as a stateless JSON API.
//
// Each request carries everything a solve needs (initial state, goals and
// optionally its own operator catalog), so the server keeps no session
// state between calls.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/bramble/internal/logging"
	"github.com/aretw0/bramble/internal/runtime"
	"github.com/aretw0/bramble/pkg/domain"
	"github.com/aretw0/bramble/pkg/observability"
)

// SolveRequest is the JSON body of POST /solve.
type SolveRequest struct {
	Initial []domain.Fact `json:"initial"`
	Goals   []domain.Fact `json:"goals"`
	// Operators overrides the server's default catalog when present.
	Operators []domain.Operator `json:"operators,omitempty"`
}

// Server handles solve requests against a default catalog.
type Server struct {
	catalog domain.Catalog
	logger  *slog.Logger
	metrics *observability.Metrics
	depth   int
}

// ServerOption configures the HTTP server.
type ServerOption func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches Prometheus instrumentation to solve runs.
func WithMetrics(m *observability.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithDepthLimit applies the recursion guard to every request. Servers
// should normally set this: a cyclic catalog posted by a client must not
// take the process down.
func WithDepthLimit(limit int) ServerOption {
	return func(s *Server) {
		s.depth = limit
	}
}

// NewHandler creates an HTTP handler for the planner.
// catalog may be nil if every request supplies its own operators.
func NewHandler(catalog domain.Catalog, opts ...ServerOption) http.Handler {
	s := &Server{
		catalog: catalog,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/solve", s.handleSolve)
	r.Get("/catalog", s.handleCatalog)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	catalog := s.catalog
	if len(req.Operators) > 0 {
		catalog = domain.Catalog(req.Operators)
	}
	if catalog == nil {
		s.writeError(w, http.StatusBadRequest, "no operator catalog: server has no default and request carries none")
		return
	}

	solverOpts := []runtime.SolverOption{
		runtime.WithLogger(s.logger),
		runtime.WithDepthLimit(s.depth),
	}
	if s.metrics != nil {
		solverOpts = append(solverOpts, runtime.WithLifecycleHooks(s.metrics.Hooks()))
	}

	solver := runtime.NewSolver(catalog, solverOpts...)
	state := domain.NewState(req.Initial...)

	result, err := solver.Solve(r.Context(), state, domain.NewFacts(req.Goals...))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrDepthExceeded) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err.Error())
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveResult(result)
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
