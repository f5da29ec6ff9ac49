// Package runtime implements the core means-ends analysis solver.
//
// The algorithm is deliberately simple and deliberately incomplete: it
// commits to the first appropriate operator that applies and never
// backtracks. A failed attempt deep in a precondition chain can leave the
// state permanently mutated by the partial chain; that behavior is part of
// the contract, not a bug to fix.
package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/bramble/internal/logging"
	"github.com/aretw0/bramble/pkg/domain"
)

// Solver holds the immutable configuration shared by solve runs: the
// operator catalog, logging, observability hooks and the optional depth
// guard. A Solver is safe for concurrent Solve calls; each run owns its
// own state and trace.
type Solver struct {
	catalog    domain.Catalog
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	depthLimit int
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithLogger sets a structured logger for the solver.
func WithLogger(logger *slog.Logger) SolverOption {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) SolverOption {
	return func(s *Solver) {
		s.hooks = hooks
	}
}

// WithDepthLimit enables the opt-in recursion guard. The faithful default
// (0) has no guard: a precondition cycle in the catalog recurses until the
// stack is exhausted. With a limit set, exceeding it aborts the whole solve
// with domain.ErrDepthExceeded rather than reporting a Failed outcome.
func WithDepthLimit(limit int) SolverOption {
	return func(s *Solver) {
		s.depthLimit = limit
	}
}

// NewSolver creates a solver over the given operator catalog.
func NewSolver(catalog domain.Catalog, opts ...SolverOption) *Solver {
	s := &Solver{
		catalog: catalog,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run is the mutable context of a single solve call: the shared state,
// the ordered trace and the recursion bookkeeping.
type run struct {
	solver *Solver
	ctx    context.Context
	state  *domain.State
	trace  *Recorder
}

// Solve attempts to achieve every goal, in order, against the given
// initial state. Evaluation short-circuits on the first unachievable goal.
// The state is mutated in place; its final contents are returned in the
// Result alongside the ordered trace of executed operator actions.
func (s *Solver) Solve(ctx context.Context, state *domain.State, goals domain.Facts) (*domain.Result, error) {
	if s.catalog == nil {
		return nil, domain.ErrNoCatalog
	}

	r := &run{
		solver: s,
		ctx:    ctx,
		state:  state,
		trace:  NewRecorder(),
	}

	outcome := domain.OutcomeSolved
	for _, goal := range goals {
		achieved, err := r.achieve(goal, 0)
		if err != nil {
			return nil, err
		}
		if !achieved {
			outcome = domain.OutcomeFailed
			break
		}
	}

	result := &domain.Result{
		Outcome: outcome,
		Trace:   r.trace.Snapshot(),
		Final:   state.Facts(),
	}

	s.logger.Debug("solve finished",
		"outcome", result.Outcome,
		"executed", len(result.Trace),
		"facts", state.Len(),
	)

	return result, nil
}

// achieve reports whether goal currently holds or can be made to hold by
// applying one appropriate operator. Candidates are tried in catalog order
// and the first success wins; once an operator has run there is no undo,
// even if its mutations turn out badly for later goals.
func (r *run) achieve(goal domain.Fact, depth int) (bool, error) {
	if r.solver.depthLimit > 0 && depth > r.solver.depthLimit {
		r.solver.logger.Warn("recursion guard tripped", "goal", goal, "depth", depth)
		return false, domain.ErrDepthExceeded
	}

	r.emitGoalCheck(goal, depth)

	if r.state.Contains(goal) {
		r.emitGoalAchieved(goal, depth, true)
		return true, nil
	}

	for _, op := range r.solver.catalog.Candidates(goal) {
		applied, err := r.applyOperator(goal, op, depth)
		if err != nil {
			return false, err
		}
		if applied {
			r.emitGoalAchieved(goal, depth, true)
			return true, nil
		}
	}

	r.solver.logger.Debug("goal not achievable", "goal", goal, "depth", depth)
	r.emitGoalAchieved(goal, depth, false)
	return false, nil
}

// applyOperator recursively achieves every precondition of op and, if all
// succeed, records the execution and mutates the state by op's effects.
// Preconditions achieved before a later one fails are NOT rolled back.
func (r *run) applyOperator(goal domain.Fact, op domain.Operator, depth int) (bool, error) {
	for _, pre := range op.Preconds {
		achieved, err := r.achieve(pre, depth+1)
		if err != nil {
			return false, err
		}
		if !achieved {
			return false, nil
		}
	}

	r.solver.logger.Info("executing operator", "action", op.Action, "goal", goal)
	r.trace.Record(op.Action)
	r.emitOperator(goal, op)

	r.state.Apply(op)
	return true, nil
}

func (r *run) emitGoalCheck(goal domain.Fact, depth int) {
	if r.solver.hooks.OnGoalCheck == nil {
		return
	}
	r.solver.hooks.OnGoalCheck(r.ctx, &domain.GoalEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventGoalCheck},
		Goal:      goal,
		Depth:     depth,
	})
}

func (r *run) emitGoalAchieved(goal domain.Fact, depth int, achieved bool) {
	if r.solver.hooks.OnGoalAchieved == nil {
		return
	}
	r.solver.hooks.OnGoalAchieved(r.ctx, &domain.GoalEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventGoalAchieved},
		Goal:      goal,
		Depth:     depth,
		Achieved:  achieved,
	})
}

func (r *run) emitOperator(goal domain.Fact, op domain.Operator) {
	if r.solver.hooks.OnOperator == nil {
		return
	}
	r.solver.hooks.OnOperator(r.ctx, &domain.OperatorEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventOperator},
		Action:    op.Action,
		Goal:      goal,
	})
}
