package testsupport

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// WriteRecipe drops a recipe JSON document into a datapack-style tree:
// <root>/data/<namespace>/recipes/<name>. Parent directories are created.
func WriteRecipe(t testing.TB, root, namespace, name, content string) string {
	t.Helper()

	path := filepath.Join(root, "data", namespace, "recipes", name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// BuildJar assembles a zip archive at path from entry name -> content.
func BuildJar(t testing.TB, path string, entries map[string]string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatalf("close %s: %v", path, err)
		}
	}()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("finalize %s: %v", path, err)
	}
}

// WriteEdibles writes an edible masterlist JSON file and returns its path.
func WriteEdibles(t testing.TB, dir string, items ...string) string {
	t.Helper()

	payload := `{"items": [`
	for i, item := range items {
		if i > 0 {
			payload += ", "
		}
		payload += `"` + item + `"`
	}
	payload += `]}`

	path := filepath.Join(dir, "edibles.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
