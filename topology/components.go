package topology

import (
	"fmt"

	"github.com/katalvlaran/cellplex/unionfind"
)

// ConnectedComponents partitions the cells of c into groups of cells that are
// transitively linked by shared vertices.
//
// With WithVertexCount(n), n != 0, the dense variant runs (ids must lie in [0, n));
// otherwise the sparse variant runs, which accepts arbitrary ids.
// See ConnectedComponentsDense and ConnectedComponentsSparse for details.
func ConnectedComponents(c Complex, opts ...Option) ([]Complex, error) {
	o := buildOptions(opts)
	if o.HasVertexCount {
		return ConnectedComponentsDense(c, o.VertexCount)
	}

	return ConnectedComponentsSparse(c, opts...)
}

// ConnectedComponentsDense labels components assuming vertex ids form the
// dense range [0, vertexCount).
//
// Steps:
//  1. Check that every id lies in range.
//  2. Link the vertices of every cell in a disjoint-set forest of vertexCount
//     elements. Joining each vertex to the cell's first one yields the same
//     partition as linking every pair.
//  3. Scan the cells in input order and bucket each by the root of its first
//     vertex; a root seen for the first time opens a new group.
//
// Every cell lands in exactly one group, as a deep copy. Groups are ordered by
// first encounter, cells inside a group by input order. A cell with no
// vertices shares nothing and forms a group of its own.
//
// Errors:
//   - ErrBadVertexCount if vertexCount < 0.
//   - ErrVertexOutOfRange if an id falls outside [0, vertexCount).
//
// Complexity: O(total cell size · α(V)). Memory: O(V) plus the copied cells.
func ConnectedComponentsDense(c Complex, vertexCount int) ([]Complex, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}
	// 1. Range check.
	for i, cell := range c {
		for _, v := range cell {
			if v < 0 || v >= vertexCount {
				return nil, fmt.Errorf("%w: vertex %d in cell %d (vertex count %d)", ErrVertexOutOfRange, v, i, vertexCount)
			}
		}
	}

	// 2. Link.
	labels := unionfind.New(vertexCount)
	for _, cell := range c {
		for j := 1; j < len(cell); j++ {
			labels.Union(cell[0], cell[j])
		}
	}

	// 3. Split.
	return splitComponents(c, vertexCount, func(v int) int {
		return labels.Find(v)
	}), nil
}

// ConnectedComponentsSparse labels components without assuming dense ids.
//
// The 0-skeleton (sorted distinct vertices) is computed first and each raw id
// is mapped to its position in it with FindCell, so the disjoint-set forest
// only holds the vertices actually used. Linking and splitting then proceed as
// in ConnectedComponentsDense, with the same ordering guarantees.
// Only WithComparator is honored among opts.
//
// Complexity: O(total cell size · log V). Memory: O(V) plus the copied cells.
func ConnectedComponentsSparse(c Complex, opts ...Option) ([]Complex, error) {
	o := buildOptions(opts)

	// 1. 0-skeleton and id -> compact index mapping.
	verts := vertexSkeleton(c, o.Compare)
	key := make(Cell, 1)
	compact := func(v int) int {
		key[0] = v
		return search(verts, key, o.Compare)
	}

	// 2. Link.
	labels := unionfind.New(len(verts))
	for _, cell := range c {
		if len(cell) == 0 {
			continue
		}
		first := compact(cell[0])
		for j := 1; j < len(cell); j++ {
			labels.Union(first, compact(cell[j]))
		}
	}

	// 3. Split.
	return splitComponents(c, len(verts), func(v int) int {
		return labels.Find(compact(v))
	}), nil
}

// vertexSkeleton returns the canonical singleton cells of every id used in c.
// It equals Skeleton(c, 0) but has no cell width limit.
func vertexSkeleton(c Complex, cmp Comparator) Complex {
	verts := make(Complex, 0, len(c))
	for _, cell := range c {
		for _, v := range cell {
			verts = append(verts, Cell{v})
		}
	}

	return Normalize(verts, WithComparator(cmp))
}

// splitComponents buckets cells by the root label of their first vertex in one
// forward scan. size bounds the labels returned by root.
func splitComponents(c Complex, size int, root func(v int) int) []Complex {
	group := make([]int, size)
	for i := range group {
		group[i] = -1
	}

	comps := make([]Complex, 0)
	for _, cell := range c {
		if len(cell) == 0 {
			comps = append(comps, Complex{cloneCell(cell)})
			continue
		}
		r := root(cell[0])
		if group[r] < 0 {
			group[r] = len(comps)
			comps = append(comps, Complex{cloneCell(cell)})
			continue
		}
		comps[group[r]] = append(comps[group[r]], cloneCell(cell))
	}

	return comps
}
