package pathfinder

import (
	"github.com/katalvlaran/asciipath/asciimap"
)

// Finder walks a route drawn in an ASCII map.
// It owns its map and cursor exclusively and is not safe for concurrent use;
// give each goroutine its own Finder.
type Finder struct {
	opts   Options
	isPath func(rune) bool

	m       *asciimap.Map
	pos     asciimap.Position
	last    Direction
	hasLast bool
	path    []rune
	letters []FoundLetter
	seen    map[asciimap.Position]struct{}
}

// New returns a Finder with no map loaded.
func New(opts ...Option) *Finder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Finder{
		opts:   o,
		isPath: PathCharFunc(o.Lenient),
		seen:   make(map[asciimap.Position]struct{}),
	}
}

// Load parses text into a new map and resets the cursor: position {0,0},
// no last direction, empty path and no found letters.
// On error the Finder keeps its previous map and state.
func (f *Finder) Load(text string) error {
	m, err := asciimap.Parse(text)
	if err != nil {
		return err
	}
	f.m = m
	f.pos = asciimap.Position{}
	f.reset()
	return nil
}

// reset clears everything but the map and position.
func (f *Finder) reset() {
	f.hasLast = false
	f.last = 0
	f.path = f.path[:0]
	f.letters = nil
	clear(f.seen)
}

// Map returns the loaded map, or nil before the first successful Load.
func (f *Finder) Map() *asciimap.Map { return f.m }

// PassedPath returns every rune stood on so far, in visiting order.
func (f *Finder) PassedPath() string { return string(f.path) }

// FoundLetters returns the registered letters in first-visit order.
func (f *Finder) FoundLetters() string {
	out := make([]rune, len(f.letters))
	for i, fl := range f.letters {
		out[i] = fl.Letter
	}
	return string(out)
}

// Letters returns a copy of the found-letter records.
func (f *Finder) Letters() []FoundLetter {
	out := make([]FoundLetter, len(f.letters))
	copy(out, f.letters)
	return out
}

// CurrentChar returns the rune currently stood on. The boolean is false
// while the path is empty, i.e. after Load and before GoToStart.
func (f *Finder) CurrentChar() (rune, bool) {
	if len(f.path) == 0 {
		return 0, false
	}
	return f.path[len(f.path)-1], true
}

// CurrentPosition returns the cursor position.
func (f *Finder) CurrentPosition() asciimap.Position { return f.pos }

// LastDirection returns the direction of the last move. The boolean is
// false before any move.
func (f *Finder) LastDirection() (Direction, bool) { return f.last, f.hasLast }

// Result returns a snapshot of the walk so far.
func (f *Finder) Result() *Result {
	steps := 0
	if len(f.path) > 0 {
		steps = len(f.path) - 1
	}
	return &Result{
		Path:    f.PassedPath(),
		Letters: f.FoundLetters(),
		Steps:   steps,
	}
}
