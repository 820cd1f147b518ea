package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorewood/tm/internal/output"
)

func TestRender_ByName(t *testing.T) {
	env := setupEnv(t, map[string]string{"colors.h": "#define BG \"X0\"\n#define FG \"X15\"\n"})

	stdout, _, err := execute(t, "render", "colors.h", env.palette)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if stdout != "#define BG \"#000000\"\n#define FG \"#ffffff\"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRender_ByPathDoesNotTouchCache(t *testing.T) {
	env := setupEnv(t, nil)
	path := filepath.Join(t.TempDir(), "kitty.conf")
	mustWrite(t, path, "foreground X7")

	stdout, _, err := execute(t, "render", path, env.palette)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if stdout != "foreground #070707\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if _, err := os.Stat(env.cacheDir); !os.IsNotExist(err) {
		t.Errorf("render should not create the cache directory")
	}
}

func TestRender_JSON(t *testing.T) {
	env := setupEnv(t, map[string]string{"a": "X1"})

	stdout, _, err := execute(t, "render", "--json", "a", env.palette)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if result["text"] != "#010101\n" {
		t.Errorf("text = %q", result["text"])
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	env := setupEnv(t, nil)

	_, _, err := execute(t, "render", "nope", env.palette)
	if got := output.GetExitCode(err); got != output.ExitTemplateError {
		t.Errorf("exit code = %d, want %d", got, output.ExitTemplateError)
	}
}

func TestLocateTemplate(t *testing.T) {
	dir := t.TempDir()

	if got := locateTemplate("colors.h", dir); got != filepath.Join(dir, "colors.h") {
		t.Errorf("bare name = %q", got)
	}
	if got := locateTemplate("./sub/colors.h", dir); got != "./sub/colors.h" {
		t.Errorf("relative path = %q", got)
	}
	if got := locateTemplate("colors.h", ""); got != "colors.h" {
		t.Errorf("no template dir = %q", got)
	}
}
