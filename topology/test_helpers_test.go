package topology_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/cellplex/topology"
	"github.com/stretchr/testify/require"
)

// requireSameCells asserts that got holds the same cells as want, position by
// position, up to vertex order inside each cell.
func requireSameCells(t *testing.T, want, got topology.Complex) {
	t.Helper()
	require.Lenf(t, got, len(want), "got %v, want %v", got, want)
	for i := range want {
		require.Zerof(t, topology.Compare(want[i], got[i]), "cells[%d]: got %v, want %v", i, got[i], want[i])
	}
}

// randomComplex builds n cells of 1..maxSize distinct vertices drawn from
// [0, vertices), with a fixed-seed generator for reproducibility.
func randomComplex(r *rand.Rand, n, maxSize, vertices int) topology.Complex {
	c := make(topology.Complex, n)
	for i := range c {
		k := 1 + r.Intn(maxSize)
		c[i] = topology.Cell(r.Perm(vertices)[:k])
	}

	return c
}

// shuffled returns a shallow copy of c with its cells in random order and the
// vertices inside each (cloned) cell permuted too.
func shuffled(r *rand.Rand, c topology.Complex) topology.Complex {
	out := topology.Clone(c)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	for _, cell := range out {
		r.Shuffle(len(cell), func(i, j int) { cell[i], cell[j] = cell[j], cell[i] })
	}

	return out
}

// lexReference is the definition the canonical order must agree with:
// cardinality first, then sorted tuples element-wise.
func lexReference(a, b topology.Cell) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	sa, sb := slices.Clone(a), slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)

	return slices.Compare(sa, sb)
}
