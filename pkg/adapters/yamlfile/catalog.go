// Package yamlfile loads planning problems from YAML documents.
//
// A document carries a full problem definition: the initial state, the
// goal list and the operator catalog. Operator order in the file is
// preserved, since the solver uses it as the selection tie-break.
package yamlfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/bramble/pkg/domain"
)

// Document is the on-disk shape of a planning problem.
type Document struct {
	Name      string            `yaml:"name,omitempty"`
	Initial   []domain.Fact     `yaml:"initial,omitempty"`
	Goals     []domain.Fact     `yaml:"goals,omitempty"`
	Operators []domain.Operator `yaml:"operators"`
}

// Loader implements ports.ProblemLoader over a parsed YAML document.
type Loader struct {
	doc Document
}

// Load reads and parses a problem document from path.
func Load(path string) (*Loader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a loader from raw YAML bytes.
func Parse(raw []byte) (*Loader, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse problem document: %w", err)
	}

	for i, op := range doc.Operators {
		if op.Action == "" {
			return nil, fmt.Errorf("operator %d missing action label", i)
		}
	}

	return &Loader{doc: doc}, nil
}

// Name returns the document's declared name (may be empty).
func (l *Loader) Name() string {
	return l.doc.Name
}

// Catalog returns the operator catalog in file order.
func (l *Loader) Catalog() (domain.Catalog, error) {
	ops := make(domain.Catalog, len(l.doc.Operators))
	for i, op := range l.doc.Operators {
		// Re-normalize through the constructor so file-level duplicates
		// inside a fact list collapse the same way DSL-built ones do.
		ops[i] = domain.NewOperator(op.Action, op.Preconds, op.Adds, op.Deletes)
	}
	return ops, nil
}

// Problem returns the initial state and goal list from the document.
func (l *Loader) Problem() (domain.Facts, domain.Facts, error) {
	return domain.NewFacts(l.doc.Initial...), domain.NewFacts(l.doc.Goals...), nil
}
