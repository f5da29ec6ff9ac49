package dsl

import (
	"github.com/aretw0/bramble/pkg/adapters/memory"
	"github.com/aretw0/bramble/pkg/domain"
)

// OpBuilder provides a fluent API for configuring a single operator.
type OpBuilder struct {
	op      domain.Operator
	builder *Builder
}

// Requires appends preconditions: facts that must hold (or be achievable)
// before the operator can run.
func (o *OpBuilder) Requires(facts ...domain.Fact) *OpBuilder {
	o.op.Preconds = o.op.Preconds.Union(domain.NewFacts(facts...))
	return o
}

// Adds appends add-effects. An operator is selectable only for goals in
// its add list.
func (o *OpBuilder) Adds(facts ...domain.Fact) *OpBuilder {
	o.op.Adds = o.op.Adds.Union(domain.NewFacts(facts...))
	return o
}

// Deletes appends delete-effects: facts removed from state when the
// operator runs.
func (o *OpBuilder) Deletes(facts ...domain.Fact) *OpBuilder {
	o.op.Deletes = o.op.Deletes.Union(domain.NewFacts(facts...))
	return o
}

// Op starts the next operator on the parent builder.
func (o *OpBuilder) Op(action string) *OpBuilder {
	return o.builder.Op(action)
}

// Initially forwards to the parent builder's problem definition.
func (o *OpBuilder) Initially(facts ...domain.Fact) *Builder {
	return o.builder.Initially(facts...)
}

// Goals forwards to the parent builder's problem definition.
func (o *OpBuilder) Goals(facts ...domain.Fact) *Builder {
	return o.builder.Goals(facts...)
}

// Build forwards to the parent builder.
func (o *OpBuilder) Build() (*memory.Loader, error) {
	return o.builder.Build()
}

// Operator returns the underlying domain.Operator.
// This is primarily used by the Builder, but exposed for advanced usage.
func (o *OpBuilder) Operator() domain.Operator {
	return o.op
}
