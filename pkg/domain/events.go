package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGoalCheck    EventType = "goal_check"
	EventGoalAchieved EventType = "goal_achieved"
	EventOperator     EventType = "operator_executed"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// GoalEvent reports that the achiever examined a goal.
type GoalEvent struct {
	EventBase
	Goal Fact `json:"goal"`
	// Depth is the recursion depth at which the goal was examined
	// (0 = top-level goal).
	Depth int `json:"depth"`
	// Achieved is set on EventGoalAchieved events.
	Achieved bool `json:"achieved,omitempty"`
}

// OperatorEvent reports that an operator executed and mutated state.
type OperatorEvent struct {
	EventBase
	Action string `json:"action"`
	Goal   Fact   `json:"goal"`
}

// LifecycleHooks defines callbacks for solver observability.
// Hooks run synchronously inside the solve; keep them cheap.
type LifecycleHooks struct {
	OnGoalCheck    func(context.Context, *GoalEvent)
	OnGoalAchieved func(context.Context, *GoalEvent)
	OnOperator     func(context.Context, *OperatorEvent)
}
