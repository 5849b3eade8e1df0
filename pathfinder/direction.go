package pathfinder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/asciipath/asciimap"
)

// Direction is one of the four orthogonal moves on a map.
type Direction int

const (
	// Up moves one row towards row 0.
	Up Direction = iota
	// Right moves one column towards the last column.
	Right
	// Down moves one row towards the last row.
	Down
	// Left moves one column towards column 0.
	Left
)

// CanonicalOrder is the fixed order in which candidate directions are tried.
// The start-cell policy and the mid-path fallback both depend on it.
var CanonicalOrder = [4]Direction{Up, Right, Down, Left}

var directionNames = [4]string{"up", "right", "down", "left"}

// String returns the lower-case name of d.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts a name such as "up" or "Left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownDirection, s)
}

// Valid reports whether d is one of Up, Right, Down or Left.
func (d Direction) Valid() bool { return d >= Up && d <= Left }

// Opposite returns the reverse of d: Up↔Down, Right↔Left.
// An invalid d is returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// from returns the position one step away from p in direction d.
// An invalid d does not move.
func (d Direction) from(p asciimap.Position) asciimap.Position {
	switch d {
	case Up:
		return asciimap.Position{Row: p.Row - 1, Col: p.Col}
	case Right:
		return asciimap.Position{Row: p.Row, Col: p.Col + 1}
	case Down:
		return asciimap.Position{Row: p.Row + 1, Col: p.Col}
	case Left:
		return asciimap.Position{Row: p.Row, Col: p.Col - 1}
	default:
		return p
	}
}
