package edible

import (
	"encoding/json"
	"fmt"
	"os"

	"tfoods/internal/token"
)

// Set is the set of item identifiers classified as edible.
type Set map[string]struct{}

// Contains reports whether id is classified edible.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Load reads the masterlist at path. Non-conforming entries are skipped; a
// document that is not an object with an "items" array is an error.
func Load(path string) (Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edible masterlist: %w", err)
	}
	return Parse(raw)
}

// Parse decodes masterlist bytes. Split from Load for tests.
func Parse(raw []byte) (Set, error) {
	var doc struct {
		Items *[]any `json:"items"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse edible masterlist: %w", err)
	}
	if doc.Items == nil {
		return nil, fmt.Errorf(`edible masterlist missing "items" list`)
	}

	set := make(Set, len(*doc.Items))
	for _, entry := range *doc.Items {
		if id, ok := entry.(string); ok && token.IsItemID(id) {
			set[id] = struct{}{}
		}
	}
	return set, nil
}
