package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/asciipath/asciimap"
)

// outOfBounds reports whether a step in d would leave the map.
// Each direction only tests its own edge: Up at row 0, Down at the last
// row, Left at column 0 and Right at the last column.
func (f *Finder) outOfBounds(d Direction) bool {
	switch d {
	case Up:
		return f.pos.Row <= 0
	case Right:
		return f.pos.Col >= f.m.Width-1
	case Down:
		return f.pos.Row >= f.m.Height-1
	case Left:
		return f.pos.Col <= 0
	default:
		return true
	}
}

// Look returns the rune one step away in direction d. The boolean is false
// when no map is loaded or the target lies outside the map. Look never
// changes the Finder.
// Complexity: O(1).
func (f *Finder) Look(d Direction) (rune, bool) {
	if f.m == nil || f.outOfBounds(d) {
		return 0, false
	}
	return f.m.At(d.from(f.pos))
}

// Go moves one step in direction d, appending the rune found there to the
// path and recording d as the last direction. A letter other than the end
// marker is registered as found unless its cell was registered before.
// Returns ErrInvalidMove, without changing anything, when the target lies
// outside the map, and ErrNoMap before the first Load.
func (f *Finder) Go(d Direction) error {
	if f.m == nil {
		return ErrNoMap
	}
	r, ok := f.Look(d)
	if !ok {
		return fmt.Errorf("%w: %s from %v", ErrInvalidMove, d, f.pos)
	}

	f.path = append(f.path, r)
	f.pos = d.from(f.pos)
	f.last, f.hasLast = d, true

	if IsLetter(r) {
		f.register(r, f.pos)
	}
	return nil
}

// register records a found letter at p unless p is already known.
func (f *Finder) register(r rune, p asciimap.Position) {
	if _, ok := f.seen[p]; ok {
		return
	}
	f.seen[p] = struct{}{}
	f.letters = append(f.letters, FoundLetter{Letter: r, At: p})
}
