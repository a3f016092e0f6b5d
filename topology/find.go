package topology

// FindCell returns the index of q in the normalized complex c, or NotFound.
//
// c must be in canonical order for the configured comparator (see Normalize).
// The query may list its vertices in any order. On a complex that still holds
// duplicates any one matching index may be returned, not necessarily the first.
// Empty queries and empty complexes yield NotFound.
//
// Complexity: O(log N) comparisons.
func FindCell(c Complex, q Cell, opts ...Option) int {
	if len(q) == 0 || len(c) == 0 {
		return NotFound
	}
	o := buildOptions(opts)

	return search(c, q, o.Compare)
}

// search is the binary search behind FindCell, without option handling.
func search(c Complex, q Cell, cmp Comparator) int {
	lo, hi := 0, len(c)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch s := cmp(c[mid], q); {
		case s < 0:
			lo = mid + 1
		case s > 0:
			hi = mid - 1
		default:
			return mid
		}
	}

	return NotFound
}
