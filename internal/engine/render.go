package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Palette is the color lookup the engine resolves indices against.
// palette.Palette satisfies it.
type Palette interface {
	Color(i int) (string, bool)
	Len() int
}

// IndexError reports a placeholder within MaxIndex that the palette is too
// short to resolve.
type IndexError struct {
	Token      string // placeholder text, e.g. "X12"
	Index      int
	PaletteLen int
	Line       int // 1-based; zero when the error came from Line directly
}

func (e *IndexError) Error() string {
	where := ""
	if e.Line > 0 {
		where = fmt.Sprintf(" on line %d", e.Line)
	}
	return fmt.Sprintf("placeholder %s%s needs color %d but the palette has %d entries",
		e.Token, where, e.Index, e.PaletteLen)
}

// Line substitutes every resolvable placeholder in line.
//
// Each detected placeholder is replaced where it was found. Tokens that
// repeat are all detected, so every occurrence of a token is replaced;
// text inserted from the palette is never rescanned.
func Line(line string, p Palette) (string, error) {
	if strings.IndexByte(line, Marker) < 0 {
		return line, nil
	}

	placeholders := Placeholders(line)
	if len(placeholders) == 0 {
		return line, nil
	}

	var b strings.Builder
	b.Grow(len(line))
	last := 0
	for _, ph := range placeholders {
		if !ph.Resolvable() {
			continue
		}
		color, ok := p.Color(ph.Index)
		if !ok {
			return "", &IndexError{Token: ph.Token(), Index: ph.Index, PaletteLen: p.Len()}
		}
		b.WriteString(line[last:ph.Offset])
		b.WriteString(color)
		last = ph.End()
	}
	b.WriteString(line[last:])
	return b.String(), nil
}

// Document substitutes placeholders in every line of text. Each output line,
// including the last, ends with a single "\n".
func Document(text string, p Palette) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for n, line := range SplitLines(text) {
		out, err := Line(line, p)
		if err != nil {
			var indexErr *IndexError
			if errors.As(err, &indexErr) {
				indexErr.Line = n + 1
			}
			return "", err
		}
		b.WriteString(out)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// SplitLines splits text on "\n", dropping a "\r" before each newline. A
// final newline does not start another line, so "a\n" is one line and ""
// is none.
func SplitLines(text string) []string {
	var lines []string
	for line := range strings.Lines(text) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
