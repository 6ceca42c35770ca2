package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tfoods/internal/pipeline"
	"tfoods/internal/registry"
)

func TestSyncCommandEndToEnd(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"sync"})
	if err != nil {
		t.Fatalf("sync: %v\n%s", err, out)
	}
	requireContains(t, out, "1 recipes parsed")
	requireContains(t, out, "Registry: 2 created")

	layout := registry.Layout{Root: env.registryDir}
	node, err := registry.LoadNode(layout.NodePath("minecraft:bread"))
	if err != nil {
		t.Fatalf("load bread node: %v", err)
	}
	if node.Status() != registry.StatusActive {
		t.Fatalf("expected active node, got %q", node.Status())
	}
	if _, err := os.Stat(filepath.Join(layout.GeneratedDir(), "foods.json")); err != nil {
		t.Fatalf("expected foods.json: %v", err)
	}
}

func TestSyncCommandDryRun(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"sync", "--dry-run"})
	if err != nil {
		t.Fatalf("sync --dry-run: %v\n%s", err, out)
	}
	requireContains(t, out, "Dry run: no files were written.")

	if _, err := os.Stat(env.registryDir); !os.IsNotExist(err) {
		t.Fatalf("expected registry untouched, err=%v", err)
	}
}

func TestSyncCommandMissingEdibles(t *testing.T) {
	env := setupCLITestEnv(t)

	_, err := runCLI(t, []string{"sync", "--edibles", filepath.Join(env.baseDir, "absent.json")})
	if err == nil {
		t.Fatal("expected error for missing edibles list")
	}
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestSyncCommandPositionalSources(t *testing.T) {
	env := setupCLITestEnv(t)
	altRegistry := filepath.Join(env.baseDir, "alt-registry")

	out, err := runCLI(t, []string{"sync", env.datapack, "--registry", altRegistry, "--include-ingredients=false"})
	if err != nil {
		t.Fatalf("sync with sources: %v\n%s", err, out)
	}
	requireContains(t, out, "Registry: 1 created")

	layout := registry.Layout{Root: altRegistry}
	if _, err := registry.LoadNode(layout.NodePath("minecraft:bread")); err != nil {
		t.Fatalf("load node from alt registry: %v", err)
	}
}
