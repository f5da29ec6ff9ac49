package runtime

import (
	"context"
	"testing"

	"github.com/aretw0/bramble/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// schoolCatalog is the classic "drive son to school" domain from means-ends
// analysis literature: the car needs a new battery, the shop needs to be
// paid and told about the problem, and the phone number has to be looked up
// before the shop can be called.
func schoolCatalog() domain.Catalog {
	return domain.Catalog{
		domain.NewOperator("drive-son-to-school",
			[]domain.Fact{"son-at-home", "car-works"},
			[]domain.Fact{"son-at-school"},
			[]domain.Fact{"son-at-home"}),
		domain.NewOperator("shop-installs-battery",
			[]domain.Fact{"car-needs-battery", "shop-has-money", "shop-knows-problem"},
			[]domain.Fact{"car-works"},
			nil),
		domain.NewOperator("tell-shop-problem",
			[]domain.Fact{"in-communication-with-shop"},
			[]domain.Fact{"shop-knows-problem"},
			nil),
		domain.NewOperator("telephone-shop",
			[]domain.Fact{"know-phone-number"},
			[]domain.Fact{"in-communication-with-shop"},
			nil),
		domain.NewOperator("look-up-number",
			[]domain.Fact{"have-phone-book"},
			[]domain.Fact{"know-phone-number"},
			nil),
		domain.NewOperator("give-shop-money",
			[]domain.Fact{"have-money"},
			[]domain.Fact{"shop-has-money"},
			[]domain.Fact{"have-money"}),
	}
}

func TestSolve_MultiStepChaining(t *testing.T) {
	solver := NewSolver(schoolCatalog())
	state := domain.NewState("son-at-home", "car-needs-battery", "have-money", "have-phone-book")

	result, err := solver.Solve(context.Background(), state, domain.NewFacts("son-at-school"))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSolved, result.Outcome)
	assert.Equal(t, []string{
		"give-shop-money",
		"look-up-number",
		"telephone-shop",
		"tell-shop-problem",
		"shop-installs-battery",
		"drive-son-to-school",
	}, result.Trace, "innermost preconditions resolve first, catalog order breaks ties")

	t.Run("final state reflects all effects", func(t *testing.T) {
		assert.True(t, state.Contains("son-at-school"))
		assert.False(t, state.Contains("son-at-home"), "drive deletes son-at-home")
		assert.False(t, state.Contains("have-money"), "paying the shop deletes have-money")
		assert.True(t, state.Contains("car-works"))
	})
}

func TestSolve_AlreadyTrueGoal(t *testing.T) {
	solver := NewSolver(schoolCatalog())
	state := domain.NewState("son-at-home")
	before := state.Facts()

	result, err := solver.Solve(context.Background(), state, domain.NewFacts("son-at-home"))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSolved, result.Outcome)
	assert.Empty(t, result.Trace, "an already-true goal must not execute any operator")
	assert.Equal(t, before, state.Facts(), "an already-true goal must not mutate state")

	t.Run("idempotent across repeated solves", func(t *testing.T) {
		again, err := solver.Solve(context.Background(), state, domain.NewFacts("son-at-home"))
		require.NoError(t, err)
		assert.Empty(t, again.Trace)
		assert.Equal(t, before, state.Facts())
	})
}

func TestSolve_SingleStep(t *testing.T) {
	solver := NewSolver(schoolCatalog())
	state := domain.NewState("son-at-home", "car-works")

	result, err := solver.Solve(context.Background(), state, domain.NewFacts("son-at-school"))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSolved, result.Outcome)
	assert.Equal(t, []string{"drive-son-to-school"}, result.Trace)
	assert.ElementsMatch(t, domain.Facts{"car-works", "son-at-school"}, result.Final)
}

func TestSolve_UnreachableGoal(t *testing.T) {
	solver := NewSolver(schoolCatalog())
	// No phone book: know-phone-number can never be established.
	state := domain.NewState("son-at-home", "car-needs-battery", "have-money")

	result, err := solver.Solve(context.Background(), state, domain.NewFacts("son-at-school"))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeFailed, result.Outcome)

	t.Run("partial mutation persists", func(t *testing.T) {
		// give-shop-money ran before the phone chain failed; there is no
		// backtracking, so its effects stay.
		assert.Equal(t, []string{"give-shop-money"}, result.Trace)
		assert.True(t, state.Contains("shop-has-money"))
		assert.False(t, state.Contains("have-money"))
	})
}

func TestSolve_GoalOrderMatters(t *testing.T) {
	// son-at-home is deleted by driving, so asking for it after
	// son-at-school fails, while the reverse order succeeds.
	initial := []domain.Fact{"son-at-home", "car-works"}

	t.Run("home then school solves", func(t *testing.T) {
		solver := NewSolver(schoolCatalog())
		state := domain.NewState(initial...)
		result, err := solver.Solve(context.Background(), state,
			domain.NewFacts("son-at-home", "son-at-school"))
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeSolved, result.Outcome)
	})

	t.Run("school then home fails", func(t *testing.T) {
		solver := NewSolver(schoolCatalog())
		state := domain.NewState(initial...)
		result, err := solver.Solve(context.Background(), state,
			domain.NewFacts("son-at-school", "son-at-home"))
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeFailed, result.Outcome)
		assert.Equal(t, []string{"drive-son-to-school"}, result.Trace,
			"failure of a later goal must not undo earlier executions")
	})
}

func TestSolve_FirstCandidateWins(t *testing.T) {
	catalog := domain.Catalog{
		domain.NewOperator("cheap-route", []domain.Fact{"ready"}, []domain.Fact{"goal"}, nil),
		domain.NewOperator("fancy-route", nil, []domain.Fact{"goal"}, nil),
	}
	solver := NewSolver(catalog)
	state := domain.NewState("ready")

	result, err := solver.Solve(context.Background(), state, domain.NewFacts("goal"))
	require.NoError(t, err)

	assert.Equal(t, []string{"cheap-route"}, result.Trace,
		"the first applicable candidate in catalog order is committed to")
}

func TestSolve_FallsThroughToNextCandidate(t *testing.T) {
	catalog := domain.Catalog{
		domain.NewOperator("blocked-route", []domain.Fact{"never-true"}, []domain.Fact{"goal"}, nil),
		domain.NewOperator("open-route", nil, []domain.Fact{"goal"}, nil),
	}
	solver := NewSolver(catalog)
	state := domain.NewState()

	result, err := solver.Solve(context.Background(), state, domain.NewFacts("goal"))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSolved, result.Outcome)
	assert.Equal(t, []string{"open-route"}, result.Trace)
}

// A catalog where two operators require each other's goals has no finite
// solution: without a depth limit the recursion is unbounded (a documented
// hazard of this algorithm class), so this test only runs with the guard.
func TestSolve_CyclicCatalogDepthGuard(t *testing.T) {
	catalog := domain.Catalog{
		domain.NewOperator("a", []domain.Fact{"x"}, []domain.Fact{"g"}, nil),
		domain.NewOperator("b", []domain.Fact{"g"}, []domain.Fact{"x"}, nil),
	}
	solver := NewSolver(catalog, WithDepthLimit(32))
	state := domain.NewState()

	_, err := solver.Solve(context.Background(), state, domain.NewFacts("g"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDepthExceeded,
		"a tripped guard is a distinct error, never a Failed outcome")
}

func TestSolve_NoCatalog(t *testing.T) {
	solver := NewSolver(nil)
	_, err := solver.Solve(context.Background(), domain.NewState(), domain.NewFacts("g"))
	assert.ErrorIs(t, err, domain.ErrNoCatalog)
}

func TestSolve_Hooks(t *testing.T) {
	var executed []string
	var topGoalChecks int
	hooks := domain.LifecycleHooks{
		OnGoalCheck: func(_ context.Context, e *domain.GoalEvent) {
			if e.Depth == 0 {
				topGoalChecks++
			}
		},
		OnOperator: func(_ context.Context, e *domain.OperatorEvent) {
			executed = append(executed, e.Action)
		},
	}

	solver := NewSolver(schoolCatalog(), WithLifecycleHooks(hooks))
	state := domain.NewState("son-at-home", "car-works")

	result, err := solver.Solve(context.Background(), state, domain.NewFacts("son-at-school"))
	require.NoError(t, err)

	assert.Equal(t, 1, topGoalChecks)
	assert.Equal(t, result.Trace, executed, "hook order must match the trace")
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	assert.Empty(t, r.Snapshot())

	r.Record("one")
	r.Record("two")

	snap := r.Snapshot()
	assert.Equal(t, []string{"one", "two"}, snap)
	assert.Equal(t, 2, r.Len())

	t.Run("snapshot is independent", func(t *testing.T) {
		snap[0] = "mutated"
		assert.Equal(t, []string{"one", "two"}, r.Snapshot())
	})
}
