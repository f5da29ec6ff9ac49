package domain

// Operator is a named action with preconditions and effects.
//
// Action is a label for tracing only; selection is driven purely by Adds.
// Operators are immutable once constructed: the runtime never writes to
// them, so a Catalog can be shared across concurrent solves.
type Operator struct {
	Action   string `json:"action" yaml:"action"`
	Preconds Facts  `json:"preconds,omitempty" yaml:"preconds,omitempty"`
	Adds     Facts  `json:"adds,omitempty" yaml:"adds,omitempty"`
	Deletes  Facts  `json:"deletes,omitempty" yaml:"deletes,omitempty"`
}

// NewOperator constructs an operator from plain fact lists.
// Duplicate facts within a list are collapsed.
func NewOperator(action string, preconds, adds, deletes []Fact) Operator {
	return Operator{
		Action:   action,
		Preconds: NewFacts(preconds...),
		Adds:     NewFacts(adds...),
		Deletes:  NewFacts(deletes...),
	}
}

// Appropriate reports whether this operator can be selected to satisfy goal,
// i.e. whether goal is in its add list. An operator with an empty add list
// is never appropriate for anything.
func (op Operator) Appropriate(goal Fact) bool {
	return op.Adds.Contains(goal)
}

// Catalog is an ordered, immutable sequence of operators. Order matters:
// the achiever tries candidates in catalog order and commits to the first
// one that applies.
type Catalog []Operator

// Candidates returns the operators appropriate for goal, in catalog order.
// The result may be empty.
func (c Catalog) Candidates(goal Fact) []Operator {
	var out []Operator
	for _, op := range c {
		if op.Appropriate(goal) {
			out = append(out, op)
		}
	}
	return out
}
