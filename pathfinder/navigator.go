package pathfinder

import (
	"fmt"
)

// WhereToNext chooses the direction that continues the route from the
// current cell.
//
// Behavior:
//  1. On the start marker: the first direction of CanonicalOrder whose
//     neighbor is a path character.
//  2. On the end marker: none, the walk is complete.
//  3. Elsewhere: the reverse of the last move is excluded. The last
//     direction is tried first, so the route runs straight through
//     crossings; the rest follow in CanonicalOrder.
//
// The boolean is false when no direction qualifies or the path is empty.
// Complexity: O(1).
func (f *Finder) WhereToNext() (Direction, bool) {
	cur, ok := f.CurrentChar()
	if !ok {
		return 0, false
	}

	switch cur {
	case Start:
		for _, d := range CanonicalOrder {
			if f.leadsOn(d) {
				return d, true
			}
		}
		return 0, false
	case End:
		return 0, false
	}

	if f.hasLast && f.leadsOn(f.last) {
		return f.last, true
	}
	for _, d := range CanonicalOrder {
		if f.hasLast && (d == f.last || d == f.last.Opposite()) {
			continue
		}
		if f.leadsOn(d) {
			return d, true
		}
	}
	return 0, false
}

// leadsOn reports whether the neighbor in direction d is a path character.
func (f *Finder) leadsOn(d Direction) bool {
	r, ok := f.Look(d)
	return ok && f.isPath(r)
}

// GoToStart scans the map row-major for the first start marker and places
// the cursor there: the path becomes the start marker alone, and the last
// direction and found letters are cleared.
// Returns false, leaving the Finder unchanged, if no start marker exists or
// no map is loaded.
// Complexity: O(W×H) worst case.
func (f *Finder) GoToStart() bool {
	if f.m == nil {
		return false
	}
	p, ok := f.m.Find(Start)
	if !ok {
		return false
	}
	f.reset()
	f.pos = p
	f.path = append(f.path, Start)
	return true
}

// Walk goes to the start and follows the route until the end marker is
// stood on.
//
// Errors:
//   - ErrNoMap: nothing loaded.
//   - ErrStartNotFound: the map has no start marker.
//   - ErrNoPath: a cell has no eligible continuation.
//   - ErrCanceled: the context set by WithContext is done.
//   - any error returned by the OnStep hook.
//
// On error the cursor stays on the last cell reached.
// The loop has no step bound: a route that cycles without reaching the end
// runs until the context is canceled.
func (f *Finder) Walk() error {
	if f.m == nil {
		return ErrNoMap
	}
	if !f.GoToStart() {
		return ErrStartNotFound
	}

	for {
		if cur, _ := f.CurrentChar(); cur == End {
			return nil
		}
		if err := f.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("%w at %v: %w", ErrCanceled, f.pos, err)
		}

		d, ok := f.WhereToNext()
		if !ok {
			return fmt.Errorf("%w: dead end at %v", ErrNoPath, f.pos)
		}
		if err := f.Go(d); err != nil {
			return err
		}

		if f.opts.OnStep != nil {
			r, _ := f.CurrentChar()
			if err := f.opts.OnStep(Step{Direction: d, To: f.pos, Char: r}); err != nil {
				return err
			}
		}
	}
}

// WalkText loads text into a new Finder and walks it.
// The returned Result reflects the cursor even when the walk fails after
// loading, so a partial route can be inspected; it is nil only when the
// text could not be loaded.
func WalkText(text string, opts ...Option) (*Result, error) {
	f := New(opts...)
	if err := f.Load(text); err != nil {
		return nil, err
	}
	err := f.Walk()
	return f.Result(), err
}
