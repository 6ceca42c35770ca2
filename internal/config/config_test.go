package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tfoods/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved == "" {
		t.Fatal("expected resolved path even when file is missing")
	}
	if cfg.Scan.Workers != 4 {
		t.Fatalf("expected default workers 4, got %d", cfg.Scan.Workers)
	}
	if !cfg.Sync.IncludeIngredientNodes {
		t.Fatal("expected ingredient nodes enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
[paths]
registry_dir = "/tmp/tfoods-registry"

[scan]
workers = 8
extra_fluid_fields = ["fluid_input", "fluid_input", " "]

[sync]
include_ingredient_nodes = false

[logging]
format = "JSON"
level = "DEBUG"
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Paths.RegistryDir != "/tmp/tfoods-registry" {
		t.Fatalf("unexpected registry dir %q", cfg.Paths.RegistryDir)
	}
	if cfg.Scan.Workers != 8 {
		t.Fatalf("expected workers 8, got %d", cfg.Scan.Workers)
	}
	if len(cfg.Scan.ExtraFluidFields) != 1 || cfg.Scan.ExtraFluidFields[0] != "fluid_input" {
		t.Fatalf("expected deduped fluid fields, got %v", cfg.Scan.ExtraFluidFields)
	}
	if cfg.Sync.IncludeIngredientNodes {
		t.Fatal("expected ingredient nodes disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging settings, got %+v", cfg.Logging)
	}
}

func TestManualFieldsAlwaysIncludeAssignedBuffs(t *testing.T) {
	path := writeConfig(t, `
[sync]
manual_fields = ["operator_tags"]
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Sync.ManualFields) != 2 || cfg.Sync.ManualFields[0] != "assigned_buffs" {
		t.Fatalf("expected assigned_buffs injected first, got %v", cfg.Sync.ManualFields)
	}
}

func TestValidateRejectsStructuralManualField(t *testing.T) {
	path := writeConfig(t, `
[sync]
manual_fields = ["direct_ingredients"]
`)

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for structural manual field")
	}
	if !strings.Contains(err.Error(), "direct_ingredients") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "verbose"
`)

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestNormalizeClampsWorkers(t *testing.T) {
	path := writeConfig(t, `
[scan]
workers = -2
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scan.Workers != 4 {
		t.Fatalf("expected workers clamped to default, got %d", cfg.Scan.Workers)
	}
}

func TestScanInputsExpandedAndFiltered(t *testing.T) {
	path := writeConfig(t, `
[scan]
inputs = ["/srv/mods", "", "  "]
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Scan.Inputs) != 1 || cfg.Scan.Inputs[0] != "/srv/mods" {
		t.Fatalf("unexpected inputs %v", cfg.Scan.Inputs)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Scan.Workers != 4 {
		t.Fatalf("unexpected sample workers %d", cfg.Scan.Workers)
	}
}

func TestRunHistoryPath(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = "/var/log/tfoods"
	if got := cfg.RunHistoryPath(); got != filepath.Join("/var/log/tfoods", "runs.db") {
		t.Fatalf("unexpected run history path %q", got)
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.RegistryDir = filepath.Join(root, "registry")
	cfg.Paths.LogDir = filepath.Join(root, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.RegistryDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q, err=%v", dir, err)
		}
	}
}
