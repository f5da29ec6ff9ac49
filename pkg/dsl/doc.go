/*
Package dsl provides a fluent builder for constructing operator catalogs in
code, as an alternative to loading YAML documents.

	loader, err := dsl.New().
		Op("drive-son-to-school").
		Requires("son-at-home", "car-works").
		Adds("son-at-school").
		Deletes("son-at-home").
		Build()

Operators keep the order in which they were declared; the solver uses that
order to break ties among appropriate operators.
*/
package dsl
