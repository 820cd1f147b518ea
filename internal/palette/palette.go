// Package palette loads the ordered list of colors that templates index into.
//
// A palette file is plain text with one color per line. Line N (zero-based)
// is color N. Lines are kept verbatim apart from the line ending, so an empty
// line is a valid, empty color and still occupies its slot.
package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single palette line. Colors are short; this only
// guards against feeding a binary file by mistake.
const maxLineSize = 1 << 20

// Palette is an immutable, indexable sequence of color strings.
type Palette struct {
	colors []string
}

// New returns a palette holding a copy of colors.
func New(colors ...string) Palette {
	return Palette{colors: append([]string(nil), colors...)}
}

// Load reads the palette file at path.
func Load(path string) (Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		return Palette{}, fmt.Errorf("opening palette %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	p, err := Parse(file)
	if err != nil {
		return Palette{}, fmt.Errorf("reading palette %s: %w", path, err)
	}
	return p, nil
}

// Parse reads a palette from r. A trailing newline does not produce an
// extra empty entry, and a "\r" before each newline is dropped. Lines
// longer than 1 MiB are rejected with their line number.
func Parse(r io.Reader) (Palette, error) {
	var colors []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		colors = append(colors, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Palette{}, fmt.Errorf("line %d is longer than %d bytes: %w", len(colors)+1, maxLineSize, err)
		}
		return Palette{}, err
	}
	return Palette{colors: colors}, nil
}

// Len returns the number of entries.
func (p Palette) Len() int {
	return len(p.colors)
}

// Color returns entry i and whether it exists.
func (p Palette) Color(i int) (string, bool) {
	if i < 0 || i >= len(p.colors) {
		return "", false
	}
	return p.colors[i], true
}

// Colors returns a copy of all entries in order.
func (p Palette) Colors() []string {
	return append([]string(nil), p.colors...)
}
