package dsl

import (
	"fmt"

	"github.com/aretw0/bramble/pkg/adapters/memory"
	"github.com/aretw0/bramble/pkg/domain"
)

// Builder manages catalog construction. Declaration order is preserved.
type Builder struct {
	ops     []*OpBuilder
	initial domain.Facts
	goals   domain.Facts
}

// New creates a new catalog builder.
func New() *Builder {
	return &Builder{}
}

// Op starts a new operator with the given action label and returns its
// builder for chaining.
func (b *Builder) Op(action string) *OpBuilder {
	ob := &OpBuilder{
		op:      domain.Operator{Action: action},
		builder: b,
	}
	b.ops = append(b.ops, ob)
	return ob
}

// Initially declares the starting facts of the bundled problem.
func (b *Builder) Initially(facts ...domain.Fact) *Builder {
	b.initial = domain.NewFacts(facts...)
	return b
}

// Goals declares the ordered goal list of the bundled problem.
func (b *Builder) Goals(facts ...domain.Fact) *Builder {
	b.goals = domain.NewFacts(facts...)
	return b
}

// Catalog compiles the declared operators into an ordered catalog.
func (b *Builder) Catalog() (domain.Catalog, error) {
	catalog := make(domain.Catalog, 0, len(b.ops))
	for i, ob := range b.ops {
		if ob.op.Action == "" {
			return nil, fmt.Errorf("operator %d missing action label", i)
		}
		catalog = append(catalog, ob.op)
	}
	return catalog, nil
}

// Build compiles the catalog into a memory loader, carrying the declared
// problem definition if one was given.
func (b *Builder) Build() (*memory.Loader, error) {
	catalog, err := b.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return memory.NewLoader(catalog).WithProblem(b.initial, b.goals), nil
}
