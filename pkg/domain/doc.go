// Package domain contains the core value types of the Bramble planner:
// Facts, the mutable State set, Operators, Catalogs and solve Results.
//
// The types here are storage- and transport-agnostic. Adapters (YAML files,
// HTTP payloads, the DSL builder) construct them; the runtime consumes them.
package domain
