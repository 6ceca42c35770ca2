package scan

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tfoods/internal/recipe"
)

// walkDir streams recipe documents out of a datapack-style directory tree
// rooted at src.Path. A root without a data/ subdirectory yields nothing.
// Unreadable or malformed files are counted as skips.
func walkDir(src Source, visit visitFunc) (parsed, skipped int, err error) {
	dataDir := filepath.Join(src.Path, "data")
	if _, statErr := os.Stat(dataDir); statErr != nil {
		return 0, 0, nil
	}

	walkErr := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A subtree we cannot read is skipped, not fatal.
			skipped++
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		rel, relErr := filepath.Rel(src.Path, path)
		if relErr != nil {
			skipped++
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !strings.Contains(rel, "/recipes/") {
			return nil
		}

		body, ok := readRecipeFile(path)
		if !ok {
			skipped++
			return nil
		}
		parsed++
		if !visit(recipe.Document{Source: src.ID(), Path: rel, Body: body}) {
			return fs.SkipAll
		}
		return nil
	})
	if walkErr != nil {
		return parsed, skipped, walkErr
	}
	return parsed, skipped, nil
}

func readRecipeFile(path string) (map[string]any, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false
	}
	return body, body != nil
}
