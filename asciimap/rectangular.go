package asciimap

// NewRectangular deep-copies rows into a new rectangular [][]T.
// An empty input yields an empty, non-nil result.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func NewRectangular[T any](rows [][]T) ([][]T, error) {
	if len(rows) == 0 {
		return [][]T{}, nil
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = make([]T, w)
		copy(out[i], row)
	}
	return out, nil
}
