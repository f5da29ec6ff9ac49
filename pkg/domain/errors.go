package domain

import "errors"

// ErrDepthExceeded is returned when the opt-in recursion guard trips.
// It is distinct from a Failed outcome: a tripped guard means the catalog
// likely contains a precondition cycle, and conflating that with "cannot
// achieve" would hide a real modelling bug from the caller.
var ErrDepthExceeded = errors.New("recursion depth limit exceeded")

// ErrNoCatalog is returned when a solve is attempted without any
// operator catalog configured.
var ErrNoCatalog = errors.New("no operator catalog configured")
