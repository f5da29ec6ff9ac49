// Package memory provides an in-memory ports.CatalogLoader, primarily
// for tests and embedded demo domains.
package memory

import (
	"fmt"

	"github.com/aretw0/bramble/pkg/domain"
)

// Loader implements ports.CatalogLoader over an in-memory operator list.
type Loader struct {
	catalog domain.Catalog
	initial domain.Facts
	goals   domain.Facts
}

// NewLoader creates a loader holding the given catalog.
func NewLoader(catalog domain.Catalog) *Loader {
	return &Loader{catalog: catalog}
}

// NewFromOperators creates a loader from domain operators.
// This improves DX for tests: no intermediate serialization needed.
func NewFromOperators(ops ...domain.Operator) (*Loader, error) {
	for i, op := range ops {
		if op.Action == "" {
			return nil, fmt.Errorf("operator %d missing action label", i)
		}
	}
	return &Loader{catalog: domain.Catalog(ops)}, nil
}

// WithProblem attaches an initial state and goal list, making the loader
// usable as a ports.ProblemLoader.
func (l *Loader) WithProblem(initial, goals domain.Facts) *Loader {
	l.initial = initial.Clone()
	l.goals = goals.Clone()
	return l
}

// Catalog returns the operator catalog in its original order.
func (l *Loader) Catalog() (domain.Catalog, error) {
	return l.catalog, nil
}

// Problem returns the attached initial state and goals.
func (l *Loader) Problem() (domain.Facts, domain.Facts, error) {
	return l.initial.Clone(), l.goals.Clone(), nil
}
