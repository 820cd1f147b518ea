package palette

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: nil},
		{name: "single line no newline", input: "#000000", want: []string{"#000000"}},
		{name: "trailing newline adds no entry", input: "#000000\n#ffffff\n", want: []string{"#000000", "#ffffff"}},
		{name: "crlf endings", input: "#000000\r\n#ffffff\r\n", want: []string{"#000000", "#ffffff"}},
		{name: "empty line keeps its slot", input: "a\n\nc\n", want: []string{"a", "", "c"}},
		{name: "whitespace kept verbatim", input: "  #123456 \n", want: []string{"  #123456 "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := p.Colors(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Colors() = %q, want %q", got, tt.want)
			}
			if p.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", p.Len(), len(tt.want))
			}
		})
	}
}

func TestParse_LineTooLong(t *testing.T) {
	input := "#000000\n" + strings.Repeat("a", maxLineSize+1) + "\n"

	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("Parse() error = %v, want bufio.ErrTooLong", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the line: %v", err)
	}
}

func TestPalette_Color(t *testing.T) {
	p := New("black", "red", "")

	tests := []struct {
		index  int
		want   string
		wantOK bool
	}{
		{index: 0, want: "black", wantOK: true},
		{index: 2, want: "", wantOK: true},
		{index: 3, wantOK: false},
		{index: -1, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := p.Color(tt.index)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Color(%d) = (%q, %v), want (%q, %v)", tt.index, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNew_CopiesInput(t *testing.T) {
	colors := []string{"a", "b"}
	p := New(colors...)
	colors[0] = "changed"

	if got, _ := p.Color(0); got != "a" {
		t.Errorf("palette changed with caller slice: Color(0) = %q", got)
	}

	out := p.Colors()
	out[1] = "changed"
	if got, _ := p.Color(1); got != "b" {
		t.Errorf("palette changed through Colors(): Color(1) = %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viking")
	if err := os.WriteFile(path, []byte("#000000\n#ff0000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}
