// Package observability provides ready-made Prometheus instrumentation for
// the planner, wired through domain.LifecycleHooks.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/bramble/pkg/domain"
)

// Metrics holds the planner's Prometheus collectors.
type Metrics struct {
	SolvesTotal    *prometheus.CounterVec
	OperatorsTotal *prometheus.CounterVec
	GoalChecks     prometheus.Counter
}

// NewMetrics creates unregistered collectors. Callers register them on
// their own registry (or the default one) before serving /metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bramble_solves_total",
				Help: "Total number of solve runs by outcome",
			},
			[]string{"outcome"},
		),
		OperatorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bramble_operators_executed_total",
				Help: "Total number of operator executions by action",
			},
			[]string{"action"},
		),
		GoalChecks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bramble_goal_checks_total",
				Help: "Total number of goal examinations during solves",
			},
		),
	}
}

// Register registers all collectors on the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.SolvesTotal, m.OperatorsTotal, m.GoalChecks} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns lifecycle hooks that feed the collectors. Combine with
// bramble.WithLifecycleHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGoalCheck: func(_ context.Context, _ *domain.GoalEvent) {
			m.GoalChecks.Inc()
		},
		OnOperator: func(_ context.Context, e *domain.OperatorEvent) {
			m.OperatorsTotal.WithLabelValues(e.Action).Inc()
		},
	}
}

// ObserveResult records the outcome of a finished solve.
func (m *Metrics) ObserveResult(result *domain.Result) {
	if result == nil {
		return
	}
	m.SolvesTotal.WithLabelValues(string(result.Outcome)).Inc()
}
