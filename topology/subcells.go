package topology

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cellplex/bitcomb"
)

// maxCapacityHint bounds up-front allocations; larger outputs grow by append.
const maxCapacityHint = 1 << 20

// Subcells enumerates, for every cell of c, every sub-sequence of exactly n+1
// of its vertices. Selected vertices keep their relative order inside the
// source cell, and sub-cells are emitted cell by cell in increasing mask order
// (bit j of the mask selects position j). No sorting or deduplication happens.
//
// A negative n yields an empty complex. Cells with fewer than n+1 vertices
// contribute nothing. c is only read.
//
// Errors:
//   - ErrCellTooLarge if a cell has more than bitcomb.MaxWidth vertices.
//
// Complexity: O(Σ C(|cell|, n+1) · |cell|).
func Subcells(c Complex, n int) (Complex, error) {
	out := make(Complex, 0)
	if n < 0 {
		return out, nil
	}

	// 1. Check widths and size the output.
	total := 0
	for i, cell := range c {
		if len(cell) > bitcomb.MaxWidth {
			return nil, fmt.Errorf("%w: cell %d has %d vertices", ErrCellTooLarge, i, len(cell))
		}
		if total < maxCapacityHint {
			total += bitcomb.Binomial(len(cell), n+1)
		}
	}
	out = make(Complex, 0, min(total, maxCapacityHint))

	// 2. Walk every (n+1)-combination of every cell.
	k := n + 1
	for _, cell := range c {
		bitcomb.ForEachCombination(len(cell), k, func(mask uint64) {
			out = append(out, Cell(bitcomb.Select(make([]int, 0, k), cell, mask)))
		})
	}

	return out, nil
}

// Skeleton returns the n-skeleton of c: the canonical, deduplicated set of all
// distinct (n+1)-vertex faces of its cells. A negative n yields an empty
// complex. c is only read.
//
// Errors: see Subcells.
func Skeleton(c Complex, n int, opts ...Option) (Complex, error) {
	faces, err := Subcells(c, n)
	if err != nil {
		return nil, err
	}

	return Normalize(faces, opts...), nil
}

// Boundary applies the unsigned boundary operator to the n-faces of c.
//
// All (n+1)-vertex faces are enumerated and sorted. Equal faces then cancel in
// pairs, i.e. coefficients are taken mod 2: a face shared by two cells is
// interior and disappears, a face owned by a single cell survives. Survivors
// are returned in ascending canonical order.
//
// Orientation is ignored, so this is the chain boundary over GF(2) only; it is
// meaningful for complexes whose faces are shared by at most two cells and is
// not a general chain-complex reduction for non-manifold input.
// A negative n yields an empty complex. c is only read.
//
// Errors: see Subcells.
func Boundary(c Complex, n int, opts ...Option) (Complex, error) {
	faces, err := Subcells(c, n)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	slices.SortStableFunc(faces, o.Compare)

	// Keep faces[i] unless it pairs with faces[i+1]; out never overtakes i.
	out := faces[:0]
	for i := 0; i < len(faces); {
		if i+1 < len(faces) && o.Compare(faces[i], faces[i+1]) == 0 {
			i += 2
			continue
		}
		out = append(out, faces[i])
		i++
	}
	clear(faces[len(out):])

	return out, nil
}

// Explode returns every non-empty face of every cell of c, across all
// dimensions, as one canonical deduplicated complex. c is only read.
//
// Errors:
//   - ErrCellTooLarge if a cell has more than MaxPowersetWidth vertices.
//
// Complexity: O(Σ 2^|cell| · |cell|) plus the final normalization.
func Explode(c Complex, opts ...Option) (Complex, error) {
	total := 0
	for i, cell := range c {
		if len(cell) > MaxPowersetWidth {
			return nil, fmt.Errorf("%w: cell %d has %d vertices, limit %d", ErrCellTooLarge, i, len(cell), MaxPowersetWidth)
		}
		if total < maxCapacityHint {
			total += 1<<uint(len(cell)) - 1
		}
	}

	out := make(Complex, 0, min(total, maxCapacityHint))
	for _, cell := range c {
		limit := uint64(1) << uint(len(cell))
		for mask := uint64(1); mask < limit; mask++ {
			out = append(out, Cell(bitcomb.Select(make([]int, 0, bitcomb.PopCount(mask)), cell, mask)))
		}
	}

	return Normalize(out, opts...), nil
}
