package engine

const (
	// Marker introduces a placeholder.
	Marker = 'X'

	// MaxIndex is the highest index that is ever resolved. The bound is the
	// 16-color terminal convention and does not depend on palette length.
	MaxIndex = 15
)

// Placeholder is one marker-plus-digits token found in a line.
type Placeholder struct {
	Offset int    // byte offset of the marker
	Digits string // the one or two digits after the marker
	Index  int    // Digits as a number, 0..99
}

// Token returns the placeholder text as it appears in the line.
func (p Placeholder) Token() string {
	return string(rune(Marker)) + p.Digits
}

// End returns the byte offset just past the placeholder.
func (p Placeholder) End() int {
	return p.Offset + 1 + len(p.Digits)
}

// Resolvable reports whether the index is within the resolution bound.
func (p Placeholder) Resolvable() bool {
	return p.Index <= MaxIndex
}

// Placeholders returns every placeholder in line, left to right.
// A marker not immediately followed by a digit, including one at the end of
// the line, is literal text.
func Placeholders(line string) []Placeholder {
	var found []Placeholder
	for i := 0; i < len(line); i++ {
		if line[i] != Marker {
			continue
		}

		start := i + 1
		if start >= len(line) || !isDigit(line[start]) {
			continue
		}
		end := start + 1
		if end < len(line) && isDigit(line[end]) {
			end++
		}

		digits := line[start:end]
		found = append(found, Placeholder{
			Offset: i,
			Digits: digits,
			Index:  parseIndex(digits),
		})
		// Digits are never the marker, so skipping them misses no occurrence.
		i = end - 1
	}
	return found
}

// isDigit matches ASCII digits only. UTF-8 continuation bytes are never in
// this range, so scanning bytes is safe on multi-byte text.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func parseIndex(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}
