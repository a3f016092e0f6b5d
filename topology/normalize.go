package topology

import (
	"fmt"
	"slices"
)

// Normalize puts c into canonical order and removes duplicates.
//
// The complex is stably sorted by the configured comparator and every run of
// equal cells collapses to its first member. Element order inside the kept
// cells is left untouched (see Unorient).
//
// Ownership: c is consumed. It is sorted in place, its trailing slots are
// cleared and the returned slice aliases its storage with a shorter length.
// Use Clone beforehand if the original is still needed.
//
// Complexity: O(N log N) comparisons for N cells.
func Normalize(c Complex, opts ...Option) Complex {
	o := buildOptions(opts)
	slices.SortStableFunc(c, o.Compare)

	return dedupSorted(c, o.Compare)
}

// NormalizeWith normalizes c and reorders the parallel attribute slice attrs
// identically. When a run of equal cells collapses, only the attribute of the
// kept (first) cell survives; the attributes of the dropped duplicates are
// discarded.
//
// Both slices are consumed the same way Normalize consumes c.
// Returns ErrAttributeLength when len(attrs) != len(c).
//
// Complexity: O(N log N).
func NormalizeWith[T any](c Complex, attrs []T, opts ...Option) (Complex, []T, error) {
	// 1. Validate parallel length.
	if len(attrs) != len(c) {
		return c, attrs, fmt.Errorf("%w: %d attributes for %d cells", ErrAttributeLength, len(attrs), len(c))
	}
	o := buildOptions(opts)

	// 2. Stable sort a permutation instead of the data itself.
	perm := make([]int, len(c))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(i, j int) int {
		return o.Compare(c[i], c[j])
	})

	// 3. Walk the permutation, keeping the first cell of every equal run.
	cells := make(Complex, 0, len(c))
	vals := make([]T, 0, len(attrs))
	for _, p := range perm {
		if len(cells) > 0 && o.Compare(cells[len(cells)-1], c[p]) == 0 {
			continue
		}
		cells = append(cells, c[p])
		vals = append(vals, attrs[p])
	}

	// 4. Move the result back into the caller's storage.
	n := copy(c, cells)
	copy(attrs, vals)
	clear(c[n:])
	var zero T
	for i := n; i < len(attrs); i++ {
		attrs[i] = zero
	}

	return c[:n], attrs[:n], nil
}

// dedupSorted collapses runs of equal cells in an already sorted complex.
func dedupSorted(c Complex, cmp Comparator) Complex {
	n := 0
	for i := range c {
		if n > 0 && cmp(c[n-1], c[i]) == 0 {
			continue
		}
		c[n] = c[i]
		n++
	}
	clear(c[n:])

	return c[:n]
}

// Unorient sorts the vertex ids inside every cell of c in place and returns c.
// Afterwards each cell lists its vertices in ascending order, which makes the
// stored representation of equal cells identical.
func Unorient(c Complex) Complex {
	for _, cell := range c {
		slices.Sort(cell)
	}

	return c
}

// Orientation returns the sign of the permutation that sorts cell ascending:
// +1 for an even permutation, -1 for an odd one, 0 if cell repeats a vertex.
// Cells with fewer than two vertices are positively oriented.
//
// Complexity: O(k^2) for a cell of k vertices.
func Orientation(cell Cell) int {
	parity := 1
	for i := 0; i < len(cell); i++ {
		for j := i + 1; j < len(cell); j++ {
			switch {
			case cell[i] == cell[j]:
				return 0
			case cell[i] > cell[j]:
				parity = -parity
			}
		}
	}

	return parity
}
