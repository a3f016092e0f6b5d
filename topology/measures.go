package topology

// Dimension returns the maximum cell cardinality minus one.
// An empty complex, or one holding only empty cells, has dimension -1.
//
// Complexity: O(len(c)).
func Dimension(c Complex) int {
	d := 0
	for _, cell := range c {
		if len(cell) > d {
			d = len(cell)
		}
	}

	return d - 1
}

// CountVertices returns 1 + the largest vertex id occurring in c, i.e. the
// vertex count when ids form the dense range [0, n). A complex without any
// vertex yields 0.
//
// Complexity: O(total cell size).
func CountVertices(c Complex) int {
	maxID := -1
	for _, cell := range c {
		for _, v := range cell {
			if v > maxID {
				maxID = v
			}
		}
	}

	return maxID + 1
}

// Clone returns a deep copy of c: every cell is newly allocated, so mutating
// the clone never affects the source. A nil complex clones to nil.
//
// Complexity: O(total cell size).
func Clone(c Complex) Complex {
	if c == nil {
		return nil
	}
	out := make(Complex, len(c))
	for i, cell := range c {
		out[i] = cloneCell(cell)
	}

	return out
}

// cloneCell copies one cell; a nil cell stays nil.
func cloneCell(cell Cell) Cell {
	if cell == nil {
		return nil
	}
	cp := make(Cell, len(cell))
	copy(cp, cell)

	return cp
}
