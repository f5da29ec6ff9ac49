/*
Package bramble is a minimal backward-chaining goal-achievement engine
(means-ends analysis): given an initial set of facts, a catalog of operators
with preconditions and effects, and a list of goals, it decides whether every
goal can be reached by recursively selecting and applying operators.

# Concept

Bramble treats planning as recursive goal reduction. A goal that is already
true costs nothing. Otherwise the engine scans the catalog in order for an
operator whose add list contains the goal, recursively achieves that
operator's preconditions, and then applies its effects to the shared state.
The first applicable operator wins and is never reconsidered: there is no
backtracking, no cost model and no heuristics. Failed attempts can leave the
state partially mutated; that is a property of the algorithm family, not a
defect of the implementation.

The engine also performs no cycle detection by default. A catalog whose
preconditions and add lists form a cycle recurses without bound until the
stack is exhausted; the opt-in WithDepthLimit option converts that into a
distinct error for callers that want a safety net.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/bramble"
		"github.com/aretw0/bramble/pkg/adapters/yamlfile"
		"github.com/aretw0/bramble/pkg/domain"
	)

	func main() {
		loader, err := yamlfile.Load("./school.yaml")
		if err != nil {
			log.Fatal(err)
		}

		eng, err := bramble.New(loader)
		if err != nil {
			log.Fatal(err)
		}

		result, err := eng.Solve(context.Background(),
			domain.NewState("son-at-home", "car-works"),
			domain.NewFacts("son-at-school"),
		)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(result.Outcome) // "solved"
		fmt.Println(result.Trace)   // ["drive-son-to-school"]
	}

Catalogs can also be built in code with the fluent builder in pkg/dsl, or
supplied directly with the memory adapter.
*/
package bramble
