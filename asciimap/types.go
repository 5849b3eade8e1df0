package asciimap

import "fmt"

// Blank is the filler rune used to pad short rows.
const Blank = ' '

// Position is a zero-indexed (row, column) coordinate inside a Map.
type Position struct {
	Row, Col int
}

// String formats the position as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Map is a rectangular grid of runes. It is immutable once built.
// Width and Height define dimensions; every row holds exactly Width runes.
type Map struct {
	Width, Height int
	cells         [][]rune
}
