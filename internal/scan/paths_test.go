package scan_test

import (
	"testing"

	"tfoods/internal/scan"
)

func TestIsRecipePath(t *testing.T) {
	accept := []string{
		"data/minecraft/recipes/bread.json",
		"data/moda/recipes/nested/deep/pie.json",
		"data\\moda\\recipes\\pie.json",
	}
	for _, p := range accept {
		if !scan.IsRecipePath(p) {
			t.Fatalf("expected %q to match", p)
		}
	}

	reject := []string{
		"data/minecraft/recipes/bread.mcmeta",
		"data/minecraft/loot_tables/bread.json",
		"assets/minecraft/recipes/bread.json",
		"recipes/bread.json",
		"data/minecraft/recipes",
	}
	for _, p := range reject {
		if scan.IsRecipePath(p) {
			t.Fatalf("expected %q not to match", p)
		}
	}
}
