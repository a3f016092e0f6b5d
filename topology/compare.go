package topology

import (
	"cmp"
	"slices"
)

// Compare is the canonical cell order.
//
// Cells are ordered first by cardinality (shorter first). Cells of equal
// cardinality are ordered by their sorted vertex tuples compared element-wise.
// The order is therefore invariant under permutation of either argument.
// Returns -1, 0 or +1.
//
// Cardinalities up to 3 are handled with sorting networks on local copies, so
// the common vertex/edge/triangle comparisons never allocate; the result is
// identical to the general sort-and-compare path.
//
// Complexity: O(1) for cardinality <= 3, O(k log k) otherwise.
func Compare(a, b Cell) int {
	// 1. Cardinality decides when it differs.
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}

	// 2. Equal cardinality: compare sorted tuples.
	switch len(a) {
	case 0:
		return 0
	case 1:
		return cmp.Compare(a[0], b[0])
	case 2:
		a0, a1 := sort2(a[0], a[1])
		b0, b1 := sort2(b[0], b[1])
		if d := cmp.Compare(a0, b0); d != 0 {
			return d
		}
		return cmp.Compare(a1, b1)
	case 3:
		a0, a1, a2 := sort3(a[0], a[1], a[2])
		b0, b1, b2 := sort3(b[0], b[1], b[2])
		if d := cmp.Compare(a0, b0); d != 0 {
			return d
		}
		if d := cmp.Compare(a1, b1); d != 0 {
			return d
		}
		return cmp.Compare(a2, b2)
	default:
		return compareSorted(sortedCopy(a), sortedCopy(b))
	}
}

// SymmetricCompare is the historical closed-form cell order.
//
// Like Compare it orders by cardinality first and is invariant under
// permutation of each cell, but cardinalities 2 and 3 are ranked by elementary
// symmetric functions of the ids evaluated in wrapping 32-bit arithmetic:
//
//	n=2: a0+a1, then a0*a1
//	n=3: a0+a1+a2, then a0*a1*a2, then a0*a1 + a2*(a0+a1)
//
// The resulting order is not lexicographic, and distinct cells with ids large
// enough to wrap may compare equal. It exists for consumers that must reproduce
// orderings produced by earlier mesh tooling; select it with
// WithComparator(SymmetricCompare) on every operation of the same complex.
func SymmetricCompare(a, b Cell) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}

	switch len(a) {
	case 0:
		return 0
	case 1:
		return cmp.Compare(a[0], b[0])
	case 2:
		a0, a1 := int32(a[0]), int32(a[1])
		b0, b1 := int32(b[0]), int32(b[1])
		if d := cmp.Compare(a0+a1, b0+b1); d != 0 {
			return d
		}
		return cmp.Compare(a0*a1, b0*b1)
	case 3:
		a0, a1, a2 := int32(a[0]), int32(a[1]), int32(a[2])
		b0, b1, b2 := int32(b[0]), int32(b[1]), int32(b[2])
		la, ma := a0+a1, a0*a1
		lb, mb := b0+b1, b0*b1
		// sum
		if d := cmp.Compare(la+a2, lb+b2); d != 0 {
			return d
		}
		// product
		if d := cmp.Compare(ma*a2, mb*b2); d != 0 {
			return d
		}
		// sum of pairwise products
		return cmp.Compare(ma+a2*la, mb+b2*lb)
	default:
		return Compare(a, b)
	}
}

// compareSorted lexicographically compares two equal-length sorted tuples.
func compareSorted(a, b []int) int {
	for i := range a {
		if d := cmp.Compare(a[i], b[i]); d != 0 {
			return d
		}
	}

	return 0
}

// sortedCopy returns an ascending copy of c.
func sortedCopy(c Cell) []int {
	s := make([]int, len(c))
	copy(s, c)
	slices.Sort(s)

	return s
}

func sort2(x, y int) (int, int) {
	if y < x {
		return y, x
	}
	return x, y
}

func sort3(x, y, z int) (int, int, int) {
	x, y = sort2(x, y)
	y, z = sort2(y, z)
	x, y = sort2(x, y)
	return x, y, z
}
