package domain

// State is the set of currently-true facts for one solve run.
//
// It is the single mutable resource of the planner: exactly one solve owns
// it at a time, and only operator application writes to it. A solve run is
// single-threaded, so State carries no locking.
type State struct {
	facts Facts
}

// NewState creates a state holding the given facts, de-duplicated.
func NewState(facts ...Fact) *State {
	return &State{facts: NewFacts(facts...)}
}

// Contains reports whether fact is currently true.
func (s *State) Contains(fact Fact) bool {
	return s.facts.Contains(fact)
}

// Apply transitions the state by an operator's effects:
// delete the operator's delete list, then add its add list. The two steps
// are observable only as a single transition.
func (s *State) Apply(op Operator) {
	s.facts = s.facts.Difference(op.Deletes).Union(op.Adds)
}

// Facts returns a copy of the current fact set. Callers may inspect or
// keep it; the state itself stays private to the run.
func (s *State) Facts() Facts {
	return s.facts.Clone()
}

// Len returns the number of facts currently true.
func (s *State) Len() int {
	return len(s.facts)
}
