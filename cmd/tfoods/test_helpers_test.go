package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tfoods/internal/testsupport"
)

type cliTestEnv struct {
	baseDir     string
	configPath  string
	registryDir string
	logDir      string
	datapack    string
	edibles     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{
		baseDir:     base,
		registryDir: filepath.Join(base, "registry"),
		logDir:      filepath.Join(base, "logs"),
		datapack:    filepath.Join(base, "datapack"),
	}

	testsupport.WriteRecipe(t, env.datapack, "minecraft", "bread.json", `{
        "pattern": ["###"],
        "key": {"#": {"item": "minecraft:wheat"}},
        "result": {"item": "minecraft:bread"}
    }`)
	env.edibles = testsupport.WriteEdibles(t, base, "minecraft:bread")

	env.configPath = filepath.Join(homeDir, ".config", "tfoods", "config.toml")
	if err := os.MkdirAll(filepath.Dir(env.configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(`
[paths]
registry_dir = %q
log_dir = %q
edibles_path = %q

[scan]
inputs = [%q]

[logging]
format = "json"
level = "error"
`, env.registryDir, env.logDir, env.edibles, env.datapack)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}
