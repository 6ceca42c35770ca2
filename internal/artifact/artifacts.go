package artifact

import (
	"path/filepath"
	"sort"

	"tfoods/internal/directmap"
	"tfoods/internal/edible"
)

const (
	foodsFileName = "foods.json"
	statsFileName = "stats.json"
)

// FoodList is the generated list of outputs that are both produced by a
// known recipe and classified edible.
type FoodList struct {
	FoodCount   int      `json:"food_count"`
	FoodOutputs []string `json:"food_outputs"`
}

// BuildFoodList intersects the direct map outputs with the edible set.
func BuildFoodList(m directmap.Map, edibles edible.Set) FoodList {
	outputs := make([]string, 0, len(m))
	for id := range m {
		if edibles.Contains(id) {
			outputs = append(outputs, id)
		}
	}
	sort.Strings(outputs)
	return FoodList{FoodCount: len(outputs), FoodOutputs: outputs}
}

// Stats is the named-counter record describing one run.
type Stats map[string]int

// WriteDirectMap persists the direct ingredient map for inspection.
func WriteDirectMap(path string, m directmap.Map) error {
	return WriteJSON(path, m)
}

// WriteFoodList persists foods.json under generatedDir.
func WriteFoodList(generatedDir string, foods FoodList) error {
	return WriteJSON(filepath.Join(generatedDir, foodsFileName), foods)
}

// WriteStats persists stats.json under generatedDir.
func WriteStats(generatedDir string, stats Stats) error {
	return WriteJSON(filepath.Join(generatedDir, statsFileName), stats)
}
