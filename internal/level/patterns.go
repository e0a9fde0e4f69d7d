package level

import "strings"

// PatternWidth is the number of tile slots in one pattern row.
const PatternWidth = 20

// Pattern is one floor layout: true marks a tile at that column slot.
type Pattern [PatternWidth]bool

// Count returns the number of tiles in the pattern.
func (p Pattern) Count() int {
	n := 0
	for _, on := range p {
		if on {
			n++
		}
	}
	return n
}

// String renders the pattern as '#' for tiles and '.' for gaps.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(PatternWidth)
	for _, on := range p {
		if on {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// ParsePattern builds a Pattern from a '#'/'.' string. Any rune other than
// '#', 'x', 'X' or '1' is a gap. ok is false when the length is wrong.
func ParsePattern(s string) (p Pattern, ok bool) {
	runes := []rune(s)
	if len(runes) != PatternWidth {
		return p, false
	}
	for i, r := range runes {
		switch r {
		case '#', 'x', 'X', '1':
			p[i] = true
		}
	}
	return p, true
}

func row(bits ...int) Pattern {
	var p Pattern
	for i, b := range bits {
		p[i] = b != 0
	}
	return p
}

var defaultPatterns = []Pattern{
	row(0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0),
	row(0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0),
	row(1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
	row(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1),
	row(1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1),
	row(1, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 1),
	row(1, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 1),
	row(1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1, 1),
	row(0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0),
	row(1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1),
	row(1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1),
	row(0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0),
	row(1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1),
	row(0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 0),
	row(1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1),
	row(1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1),
	row(1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1),
	row(1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1),
	row(1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1),
	row(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1),
	row(1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
}

// DefaultPatterns returns a copy of the built-in 21-row floor library.
func DefaultPatterns() []Pattern {
	out := make([]Pattern, len(defaultPatterns))
	copy(out, defaultPatterns)
	return out
}

// LegacyPatternLimit is the number of leading library rows the first
// release sampled from. Rows past it were never placed.
const LegacyPatternLimit = 10
