package ports

import "github.com/aretw0/bramble/pkg/domain"

// CatalogLoader defines how the planner retrieves an operator catalog.
// This keeps the source (YAML file, memory, generated) out of the core.
type CatalogLoader interface {
	// Catalog returns the ordered operator catalog. Order is significant:
	// the solver breaks ties among appropriate operators by catalog order.
	Catalog() (domain.Catalog, error)
}

// ProblemLoader is implemented by sources that also carry a full problem
// definition: an initial state and a goal list alongside the catalog.
type ProblemLoader interface {
	CatalogLoader

	// Problem returns the initial facts and the ordered goal list.
	Problem() (initial domain.Facts, goals domain.Facts, err error)
}
