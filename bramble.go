package bramble

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/bramble/internal/logging"
	"github.com/aretw0/bramble/internal/runtime"
	"github.com/aretw0/bramble/pkg/domain"
	"github.com/aretw0/bramble/pkg/ports"
)

// Version of the bramble module.
var Version = "0.3.0"

// Engine is the high-level entry point for the Bramble library.
// It wraps the internal solver and provides a simplified API for consumers.
// An Engine is safe for concurrent Solve calls: each call owns its own
// state and trace.
type Engine struct {
	solver *runtime.Solver
	loader ports.CatalogLoader
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	depth  int
	Name   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDepthLimit enables the opt-in recursion guard. The default (0) is
// faithful to classic means-ends analysis: no guard, and a cyclic catalog
// recurses until the stack is exhausted. With a limit, exceeding it aborts
// the solve with domain.ErrDepthExceeded.
func WithDepthLimit(limit int) Option {
	return func(e *Engine) {
		e.depth = limit
	}
}

// WithName sets a descriptive label used in logs.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes a Bramble Engine over the catalog provided by loader.
func New(loader ports.CatalogLoader, opts ...Option) (*Engine, error) {
	if loader == nil {
		return nil, fmt.Errorf("a catalog loader is required")
	}

	eng := &Engine{loader: loader}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized so we never pass nil downstream.
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("domain", eng.Name)
	}

	catalog, err := loader.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	eng.solver = runtime.NewSolver(catalog,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithDepthLimit(eng.depth),
	)

	return eng, nil
}

// NewFromCatalog initializes an Engine directly from an operator catalog,
// skipping the loader indirection. Convenient for embedded domains.
func NewFromCatalog(catalog domain.Catalog, opts ...Option) (*Engine, error) {
	return New(staticLoader{catalog: catalog}, opts...)
}

type staticLoader struct {
	catalog domain.Catalog
}

func (l staticLoader) Catalog() (domain.Catalog, error) {
	return l.catalog, nil
}

// Solve attempts to achieve every goal, in order, mutating state in place.
// It returns the outcome, the ordered trace of executed operator actions and
// the final fact set. A Failed outcome is a normal result, not an error.
func (e *Engine) Solve(ctx context.Context, state *domain.State, goals domain.Facts) (*domain.Result, error) {
	return e.solver.Solve(ctx, state, goals)
}

// SolveProblem runs the problem definition bundled with the loader, if it
// carries one (e.g. a YAML document with initial state and goals).
func (e *Engine) SolveProblem(ctx context.Context) (*domain.Result, error) {
	pl, ok := e.loader.(ports.ProblemLoader)
	if !ok {
		return nil, fmt.Errorf("current loader does not carry a problem definition")
	}

	initial, goals, err := pl.Problem()
	if err != nil {
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}

	return e.Solve(ctx, domain.NewState(initial...), goals)
}

// Catalog returns the operator catalog the engine solves against.
func (e *Engine) Catalog() domain.Catalog {
	catalog, _ := e.loader.Catalog()
	return catalog
}

// Loader returns the underlying CatalogLoader used by the engine.
func (e *Engine) Loader() ports.CatalogLoader {
	return e.loader
}
