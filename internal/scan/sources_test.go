package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"tfoods/internal/scan"
	"tfoods/internal/testsupport"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
	return path
}

func TestDiscoverJarFile(t *testing.T) {
	dir := t.TempDir()
	jar := filepath.Join(dir, "somemod.jar")
	testsupport.BuildJar(t, jar, nil)

	sources, err := scan.Discover([]string{jar})
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if len(sources) != 1 || sources[0].Kind != scan.SourceJar || sources[0].Path != jar {
		t.Fatalf("unexpected sources: %+v", sources)
	}
	if sources[0].ID() != "somemod.jar" {
		t.Fatalf("unexpected source id: %q", sources[0].ID())
	}
}

func TestDiscoverModsDirectoryExpandsSorted(t *testing.T) {
	dir := t.TempDir()
	mods := filepath.Join(dir, "mods")
	touch(t, filepath.Join(mods, "zebra.jar"))
	touch(t, filepath.Join(mods, "alpha.jar"))
	touch(t, filepath.Join(mods, "pack.zip"))
	touch(t, filepath.Join(mods, "readme.txt"))

	sources, err := scan.Discover([]string{mods})
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	var names []string
	for _, src := range sources {
		if src.Kind != scan.SourceJar {
			t.Fatalf("expected jar source, got %+v", src)
		}
		names = append(names, filepath.Base(src.Path))
	}
	want := []string{"alpha.jar", "pack.zip", "zebra.jar"}
	if len(names) != len(want) {
		t.Fatalf("unexpected sources: %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected sorted expansion %v, got %v", want, names)
		}
	}
}

func TestDiscoverDatapackDirectory(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteRecipe(t, dir, "moda", "bread.json", `{}`)

	sources, err := scan.Discover([]string{dir})
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if len(sources) != 1 || sources[0].Kind != scan.SourceDir {
		t.Fatalf("unexpected sources: %+v", sources)
	}
}

func TestDiscoverSkipsUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()
	txt := touch(t, filepath.Join(dir, "notes.txt"))

	sources, err := scan.Discover([]string{txt})
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if len(sources) != 0 {
		t.Fatalf("unexpected sources: %+v", sources)
	}
}

func TestDiscoverMissingInputIsError(t *testing.T) {
	if _, err := scan.Discover([]string{filepath.Join(t.TempDir(), "absent")}); err == nil {
		t.Fatal("expected error for missing input")
	}
}
