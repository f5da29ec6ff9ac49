package cli

import "github.com/aretw0/bramble/pkg/dsl"

// SchoolLoader builds the bundled demo domain: get the son to school when
// the car needs a battery, the shop must be paid and told about the
// problem, and the phone number has to be looked up first.
func SchoolLoader() *dsl.Builder {
	b := dsl.New()
	b.Op("drive-son-to-school").
		Requires("son-at-home", "car-works").
		Adds("son-at-school").
		Deletes("son-at-home")
	b.Op("shop-installs-battery").
		Requires("car-needs-battery", "shop-has-money", "shop-knows-problem").
		Adds("car-works")
	b.Op("tell-shop-problem").
		Requires("in-communication-with-shop").
		Adds("shop-knows-problem")
	b.Op("telephone-shop").
		Requires("know-phone-number").
		Adds("in-communication-with-shop")
	b.Op("look-up-number").
		Requires("have-phone-book").
		Adds("know-phone-number")
	b.Op("give-shop-money").
		Requires("have-money").
		Adds("shop-has-money").
		Deletes("have-money")

	b.Initially("son-at-home", "car-needs-battery", "have-money", "have-phone-book")
	b.Goals("son-at-school")

	return b
}
