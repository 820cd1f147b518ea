// Package engine substitutes palette colors into template text.
//
// A placeholder is the marker character X followed by one or two decimal
// digits. The second digit is taken greedily, so "X123" is color 12 followed
// by a literal "3". Indices above MaxIndex are never resolved and stay in the
// output verbatim, whatever the palette length. An index at or below
// MaxIndex that the palette does not have is an *IndexError.
//
// Every line is processed on its own; nothing detected on one line affects
// the next.
package engine
