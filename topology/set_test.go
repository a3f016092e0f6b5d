package topology_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cellplex/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSet_Basics covers add, duplicate detection, lookup and removal.
func TestSet_Basics(t *testing.T) {
	s := topology.NewSet()
	assert.Zero(t, s.Len())

	assert.True(t, s.Add(topology.Cell{2, 1, 0}))
	assert.False(t, s.Add(topology.Cell{0, 1, 2}))
	assert.True(t, s.Add(topology.Cell{5}))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Contains(topology.Cell{1, 2, 0}))
	assert.False(t, s.Contains(topology.Cell{1, 2}))

	assert.True(t, s.Remove(topology.Cell{0, 2, 1}))
	assert.False(t, s.Remove(topology.Cell{0, 2, 1}))
	assert.Equal(t, topology.Complex{{5}}, s.Complex())

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Complex())
}

// TestSet_CopiesCells verifies the set owns its cells in both directions.
func TestSet_CopiesCells(t *testing.T) {
	s := topology.NewSet()
	cell := topology.Cell{3, 4}
	s.Add(cell)
	cell[0] = 99
	assert.True(t, s.Contains(topology.Cell{3, 4}))

	out := s.Complex()
	out[0][0] = 77
	assert.Equal(t, topology.Complex{{3, 4}}, s.Complex())
}

// TestSet_MatchesNormalize builds the same canonical complex either way.
func TestSet_MatchesNormalize(t *testing.T) {
	r := rand.New(rand.NewSource(51))
	c := randomComplex(r, 200, 3, 8)

	s := topology.NewSet()
	added := s.AddAll(c)

	want := topology.Normalize(topology.Clone(c))
	assert.Equal(t, len(want), added)
	assert.Equal(t, want, s.Complex())
}

// TestSet_Comparator keeps the symmetric order when asked to.
func TestSet_Comparator(t *testing.T) {
	opt := topology.WithComparator(topology.SymmetricCompare)
	s := topology.NewSet(opt)
	s.AddAll(topology.Complex{{0, 5}, {1, 2}, {4, 0}})
	require.Equal(t, 3, s.Len())
	assert.Equal(t, topology.Complex{{1, 2}, {4, 0}, {0, 5}}, s.Complex())
}
