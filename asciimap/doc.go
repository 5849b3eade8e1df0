// Package asciimap loads a multi-line ASCII diagram into an immutable,
// rectangular grid of runes and offers bounds-checked access to its cells.
//
// What:
//
//   - Parse turns raw text into a *Map, trimming blank lines at the outer
//     edges and right-padding short rows with spaces.
//   - Map answers InBounds, At and Find (row-major scan) queries.
//   - NewRectangular validates and deep-copies any [][]T into a rectangle.
//   - PathComponents groups the cells accepted by a predicate into
//     4-connected regions.
//
// Why:
//
//   - Diagram walkers need a grid where "out of bounds" and "blank cell"
//     are distinct answers.
//   - Fixtures drawn by hand rarely have equal line lengths.
//
// Complexity:
//
//   - Parse:          O(W×H), Memory: O(W×H).
//   - Find:           O(W×H) worst case.
//   - PathComponents: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidInput: text is empty or holds only whitespace, or its rows
//     could not be squared up (wrapping ErrNonRectangular).
//   - ErrNonRectangular: rows passed to NewRectangular differ in length.
//
// One rune is one cell; no display-width handling is attempted.
package asciimap
