// Package pathfinder follows a single route drawn in an ASCII map from its
// start marker '@' to its end marker 'x', collecting every rune stood on and
// the letters found along the way.
//
// What:
//
//   - Finder owns a loaded *asciimap.Map and a cursor (position, last
//     direction, passed path).
//   - Look peeks one cell ahead without moving; Go moves one cell.
//   - WhereToNext applies the direction policy; Walk loops it to the end.
//   - Letters are registered once per cell, in first-visit order, so a
//     letter crossed twice counts once.
//
// Direction policy:
//
//   - On '@': the first of Up, Right, Down, Left (CanonicalOrder) that leads
//     onto a path character.
//   - On 'x': stop.
//   - Elsewhere: never reverse; keep the last direction when possible,
//     otherwise the first remaining direction in CanonicalOrder.
//
// Symbols:
//
//	@ start   x end   - | segments   + turning point   A-Z a-z letters
//
// Example:
//
//	@---A---+
//	        |
//	x-B-+   C
//	    |   |
//	    +---+
//
// walks as "@---A---+|C|+---+|+-B-x" and finds "ACB".
//
// Options:
//
//   - WithLenientPathChars: any non-whitespace rune continues the route.
//   - WithContext: cancels a walk that never reaches the end.
//   - WithOnStep: observe every move.
//
// Errors:
//
//   - ErrInvalidInput   map text is empty (alias of asciimap.ErrInvalidInput)
//   - ErrNoMap          operation before a successful Load
//   - ErrStartNotFound  no '@' in the map
//   - ErrInvalidMove    Go would leave the map
//   - ErrNoPath         dead end before reaching 'x'
//   - ErrCanceled       the walk context is done
//
// A Finder is not safe for concurrent use.
package pathfinder
