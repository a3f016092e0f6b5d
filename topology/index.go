package topology

import (
	"fmt"

	"github.com/katalvlaran/cellplex/bitcomb"
)

// BuildIndex builds the incidence index from the cells of from to the cells of
// to: index[i] lists, in ascending order, every j such that from[i] is a
// sub-cell (vertex subset) of to[j]. Both complexes must be normalized with
// the same comparator. The result has exactly len(from) lists.
//
// Every non-empty vertex subset of every to-cell is looked up in from; subsets
// whose cardinality does not occur in from are skipped without a search. When
// from still holds duplicates, every equal entry following the match receives
// the incidence as well.
//
// This is the general form of Stars; prefer Stars when from is the vertex set.
//
// Errors:
//   - ErrCellTooLarge if a to-cell has more than MaxPowersetWidth vertices.
//
// Complexity: O(Σ 2^|to_j| · log|from|) comparisons.
func BuildIndex(from, to Complex, opts ...Option) ([][]int, error) {
	o := buildOptions(opts)

	// 1. One empty list per from-cell, and the cardinalities worth searching.
	index := make([][]int, len(from))
	for i := range index {
		index[i] = []int{}
	}
	var sizes [bitcomb.MaxWidth + 1]bool
	for _, f := range from {
		if len(f) <= bitcomb.MaxWidth {
			sizes[len(f)] = true
		}
	}

	// 2. Enumerate the non-empty subsets of every to-cell.
	var buf []int
	for j, cell := range to {
		if len(cell) > MaxPowersetWidth {
			return nil, fmt.Errorf("%w: cell %d has %d vertices, limit %d", ErrCellTooLarge, j, len(cell), MaxPowersetWidth)
		}
		limit := uint64(1) << uint(len(cell))
		for mask := uint64(1); mask < limit; mask++ {
			if !sizes[bitcomb.PopCount(mask)] {
				continue
			}
			buf = bitcomb.Select(buf[:0], cell, mask)
			// 3. Record the incidence on the match and any equal successors.
			idx := search(from, buf, o.Compare)
			if idx == NotFound {
				continue
			}
			for i := idx; i < len(from) && o.Compare(from[i], buf) == 0; i++ {
				index[i] = append(index[i], j)
			}
		}
	}

	return index, nil
}

// Stars returns the vertex stars of c: stars[v] lists, in ascending order, the
// index of every cell containing vertex v. It is the direct O(total cell size)
// specialization of BuildIndex for a from-complex of single vertices.
//
// The number of stars is WithVertexCount(n) when n != 0, else CountVertices(c).
//
// Errors:
//   - ErrBadVertexCount if a negative vertex count is supplied.
//   - ErrVertexOutOfRange if a vertex id falls outside [0, n).
func Stars(c Complex, opts ...Option) ([][]int, error) {
	o := buildOptions(opts)
	n, err := vertexCount(c, o)
	if err != nil {
		return nil, err
	}

	stars := make([][]int, n)
	for v := range stars {
		stars[v] = []int{}
	}
	for i, cell := range c {
		for _, v := range cell {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: vertex %d in cell %d (vertex count %d)", ErrVertexOutOfRange, v, i, n)
			}
			stars[v] = append(stars[v], i)
		}
	}

	return stars, nil
}

// vertexCount resolves the vertex count from options or from the complex.
func vertexCount(c Complex, o Options) (int, error) {
	if !o.HasVertexCount {
		return CountVertices(c), nil
	}
	if o.VertexCount < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadVertexCount, o.VertexCount)
	}

	return o.VertexCount, nil
}
