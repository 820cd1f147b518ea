package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv is an isolated config/template/cache layout.
type testEnv struct {
	configDir   string
	templateDir string
	cacheDir    string
	palette     string
}

// setupEnv points every tm directory at a temp dir, writes templates and a
// 16-entry palette (#000000, #010101, ... with #ffffff at 15).
func setupEnv(t *testing.T, templates map[string]string) testEnv {
	t.Helper()
	root := t.TempDir()
	env := testEnv{
		configDir:   filepath.Join(root, "config"),
		templateDir: filepath.Join(root, "config", "tm"),
		cacheDir:    filepath.Join(root, "cache", "tm"),
		palette:     filepath.Join(root, "viking"),
	}

	t.Setenv("TM_CONFIG_HOME", env.configDir)
	t.Setenv("TM_TEMPLATE_DIR", env.templateDir)
	t.Setenv("TM_CACHE_DIR", env.cacheDir)
	t.Setenv("TM_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CACHE_HOME", "")

	mustWrite(t, filepath.Join(env.configDir, ".keep"), "")
	if err := os.MkdirAll(env.templateDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, body := range templates {
		mustWrite(t, filepath.Join(env.templateDir, name), body)
	}

	var colors strings.Builder
	for i := range 15 {
		fmt.Fprintf(&colors, "#%02x%02x%02x\n", i, i, i)
	}
	colors.WriteString("#ffffff\n")
	mustWrite(t, env.palette, colors.String())
	return env
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
