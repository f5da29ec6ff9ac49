package tests

import (
	"testing"

	"github.com/aretw0/bramble/pkg/ports"
)

// CatalogLoaderContractTest is a reusable suite that verifies an adapter
// complies with ports.CatalogLoader.
func CatalogLoaderContractTest(t *testing.T, loader ports.CatalogLoader, wantActions []string) {
	t.Helper()

	t.Run("Catalog", func(t *testing.T) {
		catalog, err := loader.Catalog()
		if err != nil {
			t.Fatalf("unexpected error loading catalog: %v", err)
		}

		if len(catalog) != len(wantActions) {
			t.Fatalf("expected %d operators, got %d", len(wantActions), len(catalog))
		}

		// Catalog order is part of the contract, not just membership.
		for i, action := range wantActions {
			if catalog[i].Action != action {
				t.Errorf("operator %d: got %q, want %q", i, catalog[i].Action, action)
			}
		}
	})

	t.Run("Catalog_Stable", func(t *testing.T) {
		first, err := loader.Catalog()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := loader.Catalog()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("catalog changed size between loads: %d vs %d", len(first), len(second))
		}
	})
}
