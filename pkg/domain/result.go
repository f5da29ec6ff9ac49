package domain

// Outcome is the overall verdict of a solve run.
type Outcome string

const (
	// OutcomeSolved means every goal was achieved.
	OutcomeSolved Outcome = "solved"
	// OutcomeFailed means some goal could not be achieved. This is a normal
	// result, not an error: the planner has no stronger failure taxonomy.
	OutcomeFailed Outcome = "failed"
)

// Solved is a convenience predicate.
func (o Outcome) Solved() bool { return o == OutcomeSolved }

// Result is the observable output of one solve run.
type Result struct {
	// Outcome is Solved iff all goals were achieved, in order.
	Outcome Outcome `json:"outcome"`

	// Trace lists the actions of the operators that actually executed,
	// in execution order. Failed attempts further down a precondition
	// chain still leave their entries here: executed means executed.
	Trace []string `json:"trace,omitempty"`

	// Final holds the fact set after the run. It reflects every mutation
	// made during the solve, including ones from partially-successful
	// operator chains.
	Final Facts `json:"final,omitempty"`
}
