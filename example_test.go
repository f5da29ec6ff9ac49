package bramble_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/bramble"
	"github.com/aretw0/bramble/pkg/domain"
	"github.com/aretw0/bramble/pkg/dsl"
)

// Example demonstrates solving a small two-step problem with a catalog
// built in code.
func Example() {
	loader, err := dsl.New().
		Op("unlock-car").Requires("have-keys").Adds("car-unlocked").
		Op("drive-to-work").Requires("at-home", "car-unlocked").Adds("at-work").Deletes("at-home").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	eng, err := bramble.New(loader)
	if err != nil {
		log.Fatal(err)
	}

	state := domain.NewState("at-home", "have-keys")
	result, err := eng.Solve(context.Background(), state, domain.NewFacts("at-work"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Outcome)
	for _, action := range result.Trace {
		fmt.Println(action)
	}
	// Output:
	// solved
	// unlock-car
	// drive-to-work
}

// Example_failed shows that an unachievable goal is a normal outcome,
// not an error.
func Example_failed() {
	loader, err := dsl.New().
		Op("drive-to-work").Requires("car-works").Adds("at-work").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	eng, err := bramble.New(loader)
	if err != nil {
		log.Fatal(err)
	}

	result, err := eng.Solve(context.Background(), domain.NewState("at-home"), domain.NewFacts("at-work"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Outcome)
	// Output:
	// failed
}
