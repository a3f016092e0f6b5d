package topology

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Set is a canonical complex built one cell at a time. Cells are kept in a
// red-black tree ordered by the configured comparator, so membership tests and
// insertions cost O(log N) comparisons and the content can be read back in
// canonical order at any moment.
//
// A Set stores its own copies of the added cells. It is not safe for
// concurrent use.
type Set struct {
	tree *redblacktree.Tree
}

// NewSet returns an empty Set. Only WithComparator is honored among opts.
func NewSet(opts ...Option) *Set {
	o := buildOptions(opts)
	cmp := o.Compare

	return &Set{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return cmp(a.(Cell), b.(Cell))
		}),
	}
}

// Add inserts a copy of cell and reports whether it was absent.
// An equal cell already present (in any vertex order) is left as is.
func (s *Set) Add(cell Cell) bool {
	if _, found := s.tree.Get(cell); found {
		return false
	}
	s.tree.Put(cloneCell(cell), struct{}{})

	return true
}

// AddAll inserts every cell of c and returns how many were new.
func (s *Set) AddAll(c Complex) int {
	added := 0
	for _, cell := range c {
		if s.Add(cell) {
			added++
		}
	}

	return added
}

// Contains reports whether a cell equal to cell is present.
func (s *Set) Contains(cell Cell) bool {
	_, found := s.tree.Get(cell)
	return found
}

// Remove deletes the cell equal to cell and reports whether it was present.
func (s *Set) Remove(cell Cell) bool {
	if _, found := s.tree.Get(cell); !found {
		return false
	}
	s.tree.Remove(cell)

	return true
}

// Len returns the number of distinct cells.
func (s *Set) Len() int {
	return s.tree.Size()
}

// Clear removes every cell.
func (s *Set) Clear() {
	s.tree.Clear()
}

// Complex returns the content as a normalized complex: ascending canonical
// order, no duplicates, every cell a fresh copy.
func (s *Set) Complex() Complex {
	out := make(Complex, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		out = append(out, cloneCell(it.Key().(Cell)))
	}

	return out
}
