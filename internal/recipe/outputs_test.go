package recipe_test

import (
	"encoding/json"
	"sort"
	"testing"

	"tfoods/internal/recipe"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return body
}

func outputList(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func TestExtractOutputsScalarResult(t *testing.T) {
	body := decode(t, `{"result": "minecraft:bread"}`)
	got := outputList(recipe.ExtractOutputs(body))
	if len(got) != 1 || got[0] != "minecraft:bread" {
		t.Fatalf("unexpected outputs: %v", got)
	}
}

func TestExtractOutputsResultObject(t *testing.T) {
	body := decode(t, `{"result": {"item": "minecraft:bread", "count": 3}}`)
	got := outputList(recipe.ExtractOutputs(body))
	if len(got) != 1 || got[0] != "minecraft:bread" {
		t.Fatalf("unexpected outputs: %v", got)
	}
}

func TestExtractOutputsIDAndNameAliases(t *testing.T) {
	body := decode(t, `{"result": {"id": "moda:stew"}}`)
	if got := outputList(recipe.ExtractOutputs(body)); len(got) != 1 || got[0] != "moda:stew" {
		t.Fatalf("unexpected outputs: %v", got)
	}
	body = decode(t, `{"result": {"name": "moda:pie"}}`)
	if got := outputList(recipe.ExtractOutputs(body)); len(got) != 1 || got[0] != "moda:pie" {
		t.Fatalf("unexpected outputs: %v", got)
	}
}

func TestExtractOutputsResultList(t *testing.T) {
	body := decode(t, `{"results": [{"item": "moda:jam"}, {"item": "moda:jar"}]}`)
	got := outputList(recipe.ExtractOutputs(body))
	want := []string{"moda:jam", "moda:jar"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected outputs: %v", got)
	}
}

func TestExtractOutputsFallbackFields(t *testing.T) {
	body := decode(t, `{"output": {"item": "modb:cider"}}`)
	if got := outputList(recipe.ExtractOutputs(body)); len(got) != 1 || got[0] != "modb:cider" {
		t.Fatalf("unexpected outputs: %v", got)
	}

	// Fallback names are only consulted when result/results yield nothing.
	body = decode(t, `{"result": "moda:bread", "output": {"item": "modb:cider"}}`)
	got := outputList(recipe.ExtractOutputs(body))
	if len(got) != 1 || got[0] != "moda:bread" {
		t.Fatalf("fallback should not fire when primary matched: %v", got)
	}
}

func TestExtractOutputsNestedDescriptor(t *testing.T) {
	body := decode(t, `{"result": {"item": {"id": "moda:cake"}}}`)
	got := outputList(recipe.ExtractOutputs(body))
	if len(got) != 1 || got[0] != "moda:cake" {
		t.Fatalf("unexpected outputs: %v", got)
	}
}

func TestExtractOutputsIgnoresTagsAndGarbage(t *testing.T) {
	cases := []string{
		`{"result": "#forge:breads"}`,
		`{"result": "breadwithoutnamespace"}`,
		`{"result": 42}`,
		`{"result": null}`,
		`{"type": "minecraft:crafting_shaped"}`,
		`{}`,
	}
	for _, raw := range cases {
		if got := recipe.ExtractOutputs(decode(t, raw)); len(got) != 0 {
			t.Fatalf("expected no outputs for %s, got %v", raw, got)
		}
	}
}

func TestExtractOutputsDoesNotGrabIngredients(t *testing.T) {
	body := decode(t, `{
		"result": {"item": "moda:soup"},
		"ingredients": [{"item": "moda:carrot"}, {"item": "moda:potato"}]
	}`)
	got := outputList(recipe.ExtractOutputs(body))
	if len(got) != 1 || got[0] != "moda:soup" {
		t.Fatalf("ingredients leaked into outputs: %v", got)
	}
}

func TestExtractOutputsNilBody(t *testing.T) {
	if got := recipe.ExtractOutputs(nil); len(got) != 0 {
		t.Fatalf("expected empty set for nil body, got %v", got)
	}
}
