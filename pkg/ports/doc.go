/*
Package ports defines the driven ports (interfaces) for the Bramble planner.

These interfaces decouple the solver core from external implementations,
allowing operator catalogs and problem definitions to come from various
sources (YAML files, in-memory fixtures, the DSL builder).
*/
package ports
