package asciimap

import "errors"

var (
	// ErrInvalidInput indicates the map text is empty or whitespace only.
	ErrInvalidInput = errors.New("asciimap: map text must contain at least one non-blank character")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("asciimap: all rows must have the same length")
)
