package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cellplex/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Singletons verifies the initial forest.
func TestNew_Singletons(t *testing.T) {
	ds := unionfind.New(5)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, 5, ds.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i))
		assert.Equal(t, 1, ds.Size(i))
	}

	empty := unionfind.New(-3)
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Count())
}

// TestUnion_MergesAndCounts checks merge reporting, sizes and set count.
func TestUnion_MergesAndCounts(t *testing.T) {
	ds := unionfind.New(6)

	assert.True(t, ds.Union(0, 1))
	assert.True(t, ds.Union(2, 3))
	assert.False(t, ds.Union(1, 0)) // already merged
	assert.Equal(t, 4, ds.Count())

	assert.True(t, ds.Union(1, 3))
	assert.True(t, ds.Connected(0, 2))
	assert.False(t, ds.Connected(0, 4))
	assert.Equal(t, 4, ds.Size(3))
	assert.Equal(t, 1, ds.Size(5))
	assert.Equal(t, 3, ds.Count())
}

// TestUnion_RandomAgainstNaive compares against a naive labeling on random unions.
func TestUnion_RandomAgainstNaive(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	ds := unionfind.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 150; step++ {
		a, b := r.Intn(n), r.Intn(n)
		merged := ds.Union(a, b)
		require.Equal(t, label[a] != label[b], merged)
		// Relabel b's class to a's class.
		from, to := label[b], label[a]
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	classes := make(map[int]int)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j += 17 {
			require.Equal(t, label[i] == label[j], ds.Connected(i, j))
		}
		classes[label[i]]++
	}
	assert.Equal(t, len(classes), ds.Count())
	for i := 0; i < n; i++ {
		assert.Equal(t, classes[label[i]], ds.Size(i))
	}
}
