package recipe

import "sort"

// Document is one parsed recipe definition plus provenance. The Body is the
// decoded JSON tree (maps, slices, and scalars from encoding/json); it is
// consumed during extraction and never persisted.
type Document struct {
	// Source identifies where the document came from: a jar file name or a
	// datapack root path.
	Source string
	// Path is the location inside the source, e.g.
	// data/minecraft/recipes/bread.json.
	Path string
	// Body is the decoded JSON object.
	Body map[string]any
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// sortedKeys keeps pattern-key iteration stable so extraction order does not
// depend on map traversal.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
