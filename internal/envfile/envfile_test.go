package envfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `# tm settings
TM_TEMPLATE_DIR=/home/u/dotfiles/tm
export TM_CACHE_DIR="/tmp/tm cache"
TM_CONFIG='/etc/tm.yaml'

not a variable
=novalue
EMPTY=
`
	vars, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Var{
		{Key: "TM_TEMPLATE_DIR", Value: "/home/u/dotfiles/tm"},
		{Key: "TM_CACHE_DIR", Value: "/tmp/tm cache"},
		{Key: "TM_CONFIG", Value: "/etc/tm.yaml"},
		{Key: "EMPTY", Value: ""},
	}
	if !reflect.DeepEqual(vars, want) {
		t.Errorf("Parse() = %+v, want %+v", vars, want)
	}
}

func TestParseLine_MismatchedQuotesKept(t *testing.T) {
	v, ok := parseLine(`KEY="value'`)
	if !ok {
		t.Fatal("parseLine() should accept the line")
	}
	if v.Value != `"value'` {
		t.Errorf("Value = %q, want quotes kept", v.Value)
	}
}

func TestLoad_NonexistentFile(t *testing.T) {
	applied, err := Load("/nonexistent/.env")
	if err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("applied = %v, want none", applied)
	}
}

func TestLoad_SetsUnsetVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("TEST_TM_ENV_A=hello\nTEST_TM_ENV_B=world\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEST_TM_ENV_A", "")
	t.Setenv("TEST_TM_ENV_B", "")

	applied, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TEST_TM_ENV_A"); got != "hello" {
		t.Errorf("TEST_TM_ENV_A = %q, want %q", got, "hello")
	}
	if got := os.Getenv("TEST_TM_ENV_B"); got != "world" {
		t.Errorf("TEST_TM_ENV_B = %q, want %q", got, "world")
	}
	if !reflect.DeepEqual(applied, []string{"TEST_TM_ENV_A", "TEST_TM_ENV_B"}) {
		t.Errorf("applied = %v", applied)
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("TEST_TM_ENV_C=from_file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEST_TM_ENV_C", "from_env")

	applied, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TEST_TM_ENV_C"); got != "from_env" {
		t.Errorf("TEST_TM_ENV_C = %q, want %q (env should take precedence)", got, "from_env")
	}
	if len(applied) != 0 {
		t.Errorf("applied = %v, want none", applied)
	}
}
