package pathfinder

import "unicode"

// Reserved diagram symbols.
const (
	Start        = '@'
	End          = 'x'
	Horizontal   = '-'
	Vertical     = '|'
	TurningPoint = '+'
)

// IsLetter reports whether r is a letter waypoint. The end marker is
// excluded even though it is alphabetic.
func IsLetter(r rune) bool {
	return r != End && unicode.IsLetter(r)
}

// isStrictPathChar accepts segments, turning points, start, end and letters.
func isStrictPathChar(r rune) bool {
	switch r {
	case Start, End, Horizontal, Vertical, TurningPoint:
		return true
	}
	return IsLetter(r)
}

// isLenientPathChar accepts any non-whitespace rune.
func isLenientPathChar(r rune) bool {
	return !unicode.IsSpace(r)
}

// PathCharFunc returns the predicate deciding which runes belong to a route.
// With lenient=false only segments, turning points, start, end and letters
// qualify; with lenient=true every non-whitespace rune does.
func PathCharFunc(lenient bool) func(rune) bool {
	if lenient {
		return isLenientPathChar
	}
	return isStrictPathChar
}
