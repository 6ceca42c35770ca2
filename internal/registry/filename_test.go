package registry_test

import (
	"path/filepath"
	"testing"

	"tfoods/internal/registry"
)

func TestNodeFilename(t *testing.T) {
	if got := registry.NodeFilename("minecraft:bread"); got != "minecraft__bread.json" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestNodeFilenameRoundTrip(t *testing.T) {
	for _, id := range []string{"minecraft:bread", "moda:sweet_berry_pie", "a:b"} {
		name := registry.NodeFilename(id)
		back, ok := registry.NodeID(name)
		if !ok || back != id {
			t.Fatalf("round trip failed for %q: %q -> %q (%v)", id, name, back, ok)
		}
	}
}

func TestNodeIDRejectsForeignNames(t *testing.T) {
	for _, name := range []string{"README.md", "noseparator.json", "__.json", "a__.json", "__b.json"} {
		if id, ok := registry.NodeID(name); ok {
			t.Fatalf("expected %q to be rejected, got %q", name, id)
		}
	}
}

func TestLayoutPaths(t *testing.T) {
	l := registry.Layout{Root: filepath.Join("some", "registry")}
	if got := l.NodesDir(); got != filepath.Join("some", "registry", "nodes") {
		t.Fatalf("unexpected nodes dir: %q", got)
	}
	if got := l.GeneratedDir(); got != filepath.Join("some", "registry", "generated") {
		t.Fatalf("unexpected generated dir: %q", got)
	}
	if got := l.NodePath("moda:bread"); got != filepath.Join("some", "registry", "nodes", "moda__bread.json") {
		t.Fatalf("unexpected node path: %q", got)
	}
}
