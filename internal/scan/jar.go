package scan

import (
	"archive/zip"
	"encoding/json"
	"io"

	"tfoods/internal/recipe"
)

// visitFunc receives each successfully parsed recipe document. Returning
// false stops iteration early.
type visitFunc func(recipe.Document) bool

// walkJar streams recipe documents out of a mod jar. Unreadable or
// malformed entries are counted as skips and do not stop the walk; a jar
// that cannot be opened at all is reported through the returned error.
func walkJar(src Source, visit visitFunc) (parsed, skipped int, err error) {
	reader, err := zip.OpenReader(src.Path)
	if err != nil {
		return 0, 0, err
	}
	defer reader.Close()

	for _, entry := range reader.File {
		if !IsRecipePath(entry.Name) {
			continue
		}

		body, ok := readJarEntry(entry)
		if !ok {
			skipped++
			continue
		}
		parsed++
		if !visit(recipe.Document{Source: src.ID(), Path: entry.Name, Body: body}) {
			return parsed, skipped, nil
		}
	}
	return parsed, skipped, nil
}

func readJarEntry(entry *zip.File) (map[string]any, bool) {
	rc, err := entry.Open()
	if err != nil {
		return nil, false
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, false
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false
	}
	return body, body != nil
}
