package topology_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/cellplex/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompare_Cases checks fixed pairs across cardinalities 0..4.
func TestCompare_Cases(t *testing.T) {
	cases := []struct {
		name  string
		a, b  topology.Cell
		equal bool
	}{
		{"empty vs vertex", topology.Cell{}, topology.Cell{1}, false},
		{"shorter first", topology.Cell{1, 3, 5}, topology.Cell{1, 3, 5, 7}, false},
		{"vertices differ", topology.Cell{2}, topology.Cell{3}, false},
		{"same vertex", topology.Cell{0}, topology.Cell{0}, true},
		{"edges differ", topology.Cell{4, 3}, topology.Cell{7, 0}, false},
		{"edge reversed", topology.Cell{10, 11}, topology.Cell{11, 10}, true},
		{"triangles differ", topology.Cell{2, 0, 5}, topology.Cell{3, 0, 4}, false},
		{"triangle rotated", topology.Cell{0, 1, 2}, topology.Cell{2, 0, 1}, true},
		{"triangle rotated back", topology.Cell{0, 1, 2}, topology.Cell{1, 2, 0}, true},
		{"triangle swapped", topology.Cell{0, 1, 2}, topology.Cell{1, 0, 2}, true},
		{"tets differ", topology.Cell{2, 4, 5, 6}, topology.Cell{6, 7, 8, 9}, false},
		{"tets differ last", topology.Cell{1, 2, 3, 6}, topology.Cell{1, 2, 3, 7}, false},
		{"tet permuted", topology.Cell{0, 1, 2, 3}, topology.Cell{3, 1, 2, 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := topology.Compare(tc.a, tc.b)
			if tc.equal {
				assert.Zero(t, d)
			} else {
				assert.NotZero(t, d)
			}
			assert.Equal(t, -d, topology.Compare(tc.b, tc.a))
		})
	}

	assert.Equal(t, -1, topology.Compare(topology.Cell{9}, topology.Cell{0, 1}))
	assert.Equal(t, -1, topology.Compare(topology.Cell{0, 5}, topology.Cell{1, 2}))
	assert.Equal(t, 1, topology.Compare(topology.Cell{1, 2, 9}, topology.Cell{1, 2, 8}))
}

// TestCompare_AgreesWithSortedTuples compares against the reference definition
// on random cells, including permuted copies.
func TestCompare_AgreesWithSortedTuples(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cells := randomComplex(r, 300, 6, 12)
	for i := 0; i < len(cells); i++ {
		a := cells[i]
		b := cells[(i*7+3)%len(cells)]
		require.Equalf(t, lexReference(a, b), topology.Compare(a, b), "%v vs %v", a, b)

		perm := slices.Clone(a)
		r.Shuffle(len(perm), func(x, y int) { perm[x], perm[y] = perm[y], perm[x] })
		require.Zerof(t, topology.Compare(a, perm), "%v vs %v", a, perm)
	}
}

// TestCompare_TotalOrder sorts random cells and checks antisymmetry and
// transitivity along the sorted sequence.
func TestCompare_TotalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	cells := randomComplex(r, 200, 4, 9)
	slices.SortFunc(cells, topology.Compare)
	for i := 1; i < len(cells); i++ {
		require.LessOrEqual(t, topology.Compare(cells[i-1], cells[i]), 0)
	}
	for i := 0; i < len(cells); i += 5 {
		for j := i; j < len(cells); j += 11 {
			require.LessOrEqual(t, topology.Compare(cells[i], cells[j]), 0)
			require.Equal(t, -topology.Compare(cells[i], cells[j]), topology.Compare(cells[j], cells[i]))
		}
	}
}

// TestSymmetricCompare checks permutation invariance and that it is a
// different order from Compare for edges.
func TestSymmetricCompare(t *testing.T) {
	assert.Zero(t, topology.SymmetricCompare(topology.Cell{10, 11}, topology.Cell{11, 10}))
	assert.Zero(t, topology.SymmetricCompare(topology.Cell{0, 1, 2}, topology.Cell{2, 0, 1}))
	assert.Zero(t, topology.SymmetricCompare(topology.Cell{0, 1, 2, 3}, topology.Cell{3, 1, 2, 0}))
	assert.NotZero(t, topology.SymmetricCompare(topology.Cell{4, 3}, topology.Cell{7, 0}))
	assert.NotZero(t, topology.SymmetricCompare(topology.Cell{2, 0, 5}, topology.Cell{3, 0, 4}))
	assert.Equal(t, -1, topology.SymmetricCompare(topology.Cell{5}, topology.Cell{0, 1}))

	// Sum ranks first: 0+5 > 1+2, while Compare ranks [0,5] first.
	assert.Equal(t, 1, topology.SymmetricCompare(topology.Cell{0, 5}, topology.Cell{1, 2}))
	assert.Equal(t, -1, topology.Compare(topology.Cell{0, 5}, topology.Cell{1, 2}))

	r := rand.New(rand.NewSource(3))
	cells := randomComplex(r, 200, 3, 50)
	for _, a := range cells {
		perm := slices.Clone(a)
		r.Shuffle(len(perm), func(x, y int) { perm[x], perm[y] = perm[y], perm[x] })
		require.Zero(t, topology.SymmetricCompare(a, perm))
	}
}
