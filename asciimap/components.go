package asciimap

// neighborOffsets lists the four orthogonal (row, col) steps: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// PathComponents finds all 4-connected regions of cells for which isPath
// returns true. Components are discovered in row-major order of their
// first cell; cells within a component are listed in BFS order.
// A well-formed single-route diagram yields exactly one component.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Map) PathComponents(isPath func(rune) bool) [][]Position {
	seen := make([]bool, m.Width*m.Height)
	var comps [][]Position

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if !isPath(m.cells[row][col]) {
				continue
			}
			i0 := m.index(row, col)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []Position

			for qi := 0; qi < len(queue); qi++ {
				u := m.Coordinate(queue[qi])
				comp = append(comp, u)
				for _, d := range neighborOffsets {
					vr, vc := u.Row+d[0], u.Col+d[1]
					if !m.InBounds(vr, vc) || !isPath(m.cells[vr][vc]) {
						continue
					}
					vi := m.index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
