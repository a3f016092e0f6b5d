package topology

import (
	"fmt"

	"github.com/katalvlaran/cellplex/bitcomb"
)

// Validate checks c for malformed cells and returns the first violation found,
// wrapped with the offending cell index:
//
//   - ErrNegativeVertex  : a vertex id below zero.
//   - ErrDuplicateVertex : a vertex listed twice in the same cell.
//   - ErrCellTooLarge    : a cell wider than bitcomb.MaxWidth.
//
// The operations of this package do not call Validate themselves; callers
// that accept untrusted complexes should run it first. Empty cells are valid.
//
// Complexity: O(Σ |cell|^2) for cells up to 16 vertices, O(Σ |cell| log |cell|) above.
func Validate(c Complex) error {
	for i, cell := range c {
		if len(cell) > bitcomb.MaxWidth {
			return fmt.Errorf("%w: cell %d has %d vertices", ErrCellTooLarge, i, len(cell))
		}
		for _, v := range cell {
			if v < 0 {
				return fmt.Errorf("%w: vertex %d in cell %d", ErrNegativeVertex, v, i)
			}
		}
		if v, dup := repeatedVertex(cell); dup {
			return fmt.Errorf("%w: vertex %d in cell %d", ErrDuplicateVertex, v, i)
		}
	}

	return nil
}

// repeatedVertex returns a vertex occurring twice in cell, if any.
func repeatedVertex(cell Cell) (int, bool) {
	if len(cell) <= 16 {
		for i := 0; i < len(cell); i++ {
			for j := i + 1; j < len(cell); j++ {
				if cell[i] == cell[j] {
					return cell[i], true
				}
			}
		}
		return 0, false
	}
	s := sortedCopy(cell)
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			return s[i], true
		}
	}

	return 0, false
}
