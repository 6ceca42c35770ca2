package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestScanCommandSummary(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"scan", env.datapack})
	if err != nil {
		t.Fatalf("scan: %v\n%s", err, out)
	}
	requireContains(t, out, "1 recipes parsed")
	requireContains(t, out, "Direct map: 1 outputs")

	if _, err := os.Stat(env.registryDir); !os.IsNotExist(err) {
		t.Fatalf("scan must not create the registry, err=%v", err)
	}
}

func TestScanCommandWritesMap(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "map.json")

	out, err := runCLI(t, []string{"scan", env.datapack, "--out", target})
	if err != nil {
		t.Fatalf("scan --out: %v\n%s", err, out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read map: %v", err)
	}
	var m map[string][]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("parse map: %v", err)
	}
	if len(m["minecraft:bread"]) != 1 || m["minecraft:bread"][0] != "item:minecraft:wheat" {
		t.Fatalf("unexpected map contents: %v", m)
	}
}
