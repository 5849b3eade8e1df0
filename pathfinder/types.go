// Package pathfinder defines the walker state, options and sentinel errors
// for following a route drawn in an ASCII map.
package pathfinder

import (
	"context"
	"errors"

	"github.com/katalvlaran/asciipath/asciimap"
)

var (
	// ErrInvalidInput is returned by Load for empty or whitespace-only text.
	// It is the asciimap sentinel, so errors.Is matches either name.
	ErrInvalidInput = asciimap.ErrInvalidInput

	// ErrNoMap indicates an operation that needs a map was called before
	// a successful Load.
	ErrNoMap = errors.New("pathfinder: no map loaded")

	// ErrStartNotFound indicates the map holds no start marker.
	ErrStartNotFound = errors.New("pathfinder: start of path not found")

	// ErrInvalidMove indicates a step that would leave the map.
	ErrInvalidMove = errors.New("pathfinder: move leaves the map")

	// ErrNoPath indicates a dead end: no eligible direction continues the route.
	ErrNoPath = errors.New("pathfinder: no next direction from current cell")

	// ErrUnknownDirection indicates a direction name ParseDirection does not know.
	ErrUnknownDirection = errors.New("pathfinder: unknown direction")

	// ErrCanceled indicates the walk context was canceled or timed out.
	ErrCanceled = errors.New("pathfinder: walk canceled")
)

// FoundLetter is a letter waypoint registered at its first visit.
type FoundLetter struct {
	Letter rune
	At     asciimap.Position
}

// Step describes one completed move; it is passed to the OnStep hook.
type Step struct {
	Direction Direction
	To        asciimap.Position
	Char      rune
}

// Result is a snapshot of a walk.
type Result struct {
	// Path holds every rune stood on, in order, starting with the start marker.
	Path string
	// Letters holds the found letters in first-visit order.
	Letters string
	// Steps is the number of moves made.
	Steps int
}

// Option configures optional behavior of a Finder.
// Use with New(opts...) or WalkText(text, opts...).
type Option func(*Options)

// Options holds configurable parameters for a Finder.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background(),
	// which never cancels, so a cyclic map walks forever unless a bounded
	// context is supplied.
	Ctx context.Context

	// Lenient widens the valid path characters from the reserved symbols
	// and letters to any non-whitespace rune.
	Lenient bool

	// OnStep, if non-nil, is invoked after every move Walk makes.
	// Returning an error aborts Walk with that error.
	OnStep func(Step) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - Strict path characters
//   - No step hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Lenient: false,
		OnStep:  nil,
	}
}

// WithContext returns an Option that sets the Context checked before every
// move of Walk. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLenientPathChars returns an Option accepting any non-whitespace rune
// as part of the route.
func WithLenientPathChars() Option {
	return func(o *Options) {
		o.Lenient = true
	}
}

// WithOnStep returns an Option that installs fn as a per-move hook for Walk.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
