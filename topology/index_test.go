package topology_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cellplex/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tetraSurface and tetraEdges are the triangles and edges of a tetrahedron
// with the (0,3) edge left out of the edge list.
var (
	tetraSurface = topology.Complex{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	tetraEdges   = topology.Complex{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}
)

// TestBuildIndex_EdgesInTriangles maps every edge to the triangles containing it.
func TestBuildIndex_EdgesInTriangles(t *testing.T) {
	from := topology.Normalize(topology.Clone(tetraEdges))
	to := topology.Normalize(topology.Clone(tetraSurface))

	index, err := topology.BuildIndex(from, to)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1}, // [0,1]
		{0, 2}, // [0,2]
		{0, 3}, // [1,2]
		{1, 3}, // [1,3]
		{2, 3}, // [2,3]
	}, index)
}

// TestBuildIndex_NoSuperCells yields one empty list per from-cell.
func TestBuildIndex_NoSuperCells(t *testing.T) {
	from := topology.Normalize(topology.Clone(tetraSurface))
	to := topology.Normalize(topology.Clone(tetraEdges))

	index, err := topology.BuildIndex(from, to)
	require.NoError(t, err)
	require.Len(t, index, len(from))
	for _, list := range index {
		assert.Empty(t, list)
	}
}

// TestBuildIndex_MixedFrom indexes vertices, edges and a triangle at once.
func TestBuildIndex_MixedFrom(t *testing.T) {
	from := topology.Normalize(topology.Complex{{1}, {1, 2}, {0, 1, 2}, {3}})
	to := topology.Normalize(topology.Complex{{2, 1, 0}, {1, 2, 3}})

	index, err := topology.BuildIndex(from, to)
	require.NoError(t, err)
	// from: [1] [3] [1,2] [0,1,2]; to: [0,1,2] [1,2,3]
	assert.Equal(t, [][]int{{0, 1}, {1}, {0, 1}, {0}}, index)
}

// TestBuildIndex_MatchesStars compares the general index against Stars on
// random complexes whose vertex ids are all used.
func TestBuildIndex_MatchesStars(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	for trial := 0; trial < 5; trial++ {
		c := randomComplex(r, 60, 4, 9)
		c = append(c, topology.Cell{0, 1, 2, 3, 4, 5, 6, 7, 8})
		c = topology.Normalize(c)

		verts, err := topology.Skeleton(c, 0)
		require.NoError(t, err)
		require.Len(t, verts, 9)

		index, err := topology.BuildIndex(verts, c)
		require.NoError(t, err)
		stars, err := topology.Stars(c)
		require.NoError(t, err)
		for i, v := range verts {
			require.Equal(t, stars[v[0]], index[i])
		}
	}
}

// TestBuildIndex_TooLarge rejects oversize to-cells.
func TestBuildIndex_TooLarge(t *testing.T) {
	_, err := topology.BuildIndex(topology.Complex{{0}}, topology.Complex{wideCell(64)})
	assert.ErrorIs(t, err, topology.ErrCellTooLarge)

	// within the mask width but past the power-set limit
	_, err = topology.BuildIndex(topology.Complex{{0}}, topology.Complex{wideCell(topology.MaxPowersetWidth + 1)})
	assert.ErrorIs(t, err, topology.ErrCellTooLarge)
}

// TestStars lists incident cells per vertex.
func TestStars(t *testing.T) {
	c := topology.Complex{{0, 1, 2}, {1, 2, 3}, {3, 4}}

	stars, err := topology.Stars(c)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {0, 1}, {0, 1}, {1, 2}, {2}}, stars)

	stars, err = topology.Stars(c, topology.WithVertexCount(6))
	require.NoError(t, err)
	require.Len(t, stars, 6)
	assert.Empty(t, stars[5])

	stars, err = topology.Stars(nil)
	require.NoError(t, err)
	assert.Empty(t, stars)

	// zero falls back to CountVertices
	stars, err = topology.Stars(c, topology.WithVertexCount(0))
	require.NoError(t, err)
	assert.Len(t, stars, 5)
}

// TestStars_Errors covers out-of-range ids and bad vertex counts.
func TestStars_Errors(t *testing.T) {
	_, err := topology.Stars(topology.Complex{{0, 3}}, topology.WithVertexCount(3))
	assert.ErrorIs(t, err, topology.ErrVertexOutOfRange)

	_, err = topology.Stars(topology.Complex{{-1, 2}})
	assert.ErrorIs(t, err, topology.ErrVertexOutOfRange)

	_, err = topology.Stars(topology.Complex{{0}}, topology.WithVertexCount(-1))
	assert.ErrorIs(t, err, topology.ErrBadVertexCount)
}
