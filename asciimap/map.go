package asciimap

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse builds a Map from raw multi-line text.
// Line breaks may be "\n", "\r\n" or "\r". All-whitespace lines before the
// first and after the last non-blank line are dropped; blank lines in
// between are kept. Every row is right-padded with Blank up to the longest
// line, so the result is rectangular.
// Returns ErrInvalidInput if no non-whitespace rune is present.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Map, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	lines := trimBlankEdges(strings.Split(text, "\n"))
	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = padRight(row, width)
		}
	}

	return fromRows(rows)
}

// fromRows wraps padded rows into a Map. Rows that still differ in length
// are reported as ErrInvalidInput wrapping ErrNonRectangular.
func fromRows(rows [][]rune) (*Map, error) {
	cells, err := NewRectangular(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	width := 0
	if len(cells) > 0 {
		width = len(cells[0])
	}
	return &Map{Width: width, Height: len(cells), cells: cells}, nil
}

// trimBlankEdges drops all-whitespace lines at both ends of lines.
// The caller guarantees at least one non-blank line.
func trimBlankEdges(lines []string) []string {
	first, last := 0, len(lines)-1
	for first <= last && isBlank(lines[first]) {
		first++
	}
	for last >= first && isBlank(lines[last]) {
		last--
	}
	return lines[first : last+1]
}

func isBlank(line string) bool {
	return strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

func padRight(row []rune, width int) []rune {
	padded := make([]rune, width)
	copy(padded, row)
	for i := len(row); i < width; i++ {
		padded[i] = Blank
	}
	return padded
}

// InBounds reports whether (row,col) lies within the map boundaries.
// Complexity: O(1).
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// At returns the rune stored at p. The boolean is false when p lies outside
// the map, which keeps "out of bounds" distinct from a Blank cell.
// Complexity: O(1).
func (m *Map) At(p Position) (rune, bool) {
	if !m.InBounds(p.Row, p.Col) {
		return 0, false
	}
	return m.cells[p.Row][p.Col], true
}

// Find scans the map row-major (top to bottom, left to right) and returns
// the position of the first cell holding r.
// Complexity: O(W×H) worst case.
func (m *Map) Find(r rune) (Position, bool) {
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if m.cells[row][col] == r {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// Row returns row i as a string, including padding.
// It panics if i is out of range, like a slice index would.
func (m *Map) Row(i int) string {
	return string(m.cells[i])
}

// String renders the map back to text, one padded row per line.
func (m *Map) String() string {
	var sb strings.Builder
	for i := 0; i < m.Height; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(m.cells[i]))
	}
	return sb.String()
}

// index maps (row,col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (m *Map) index(row, col int) int {
	return row*m.Width + col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (m *Map) Coordinate(idx int) Position {
	return Position{Row: idx / m.Width, Col: idx % m.Width}
}
