package bitcomb_test

import (
	"fmt"

	"github.com/katalvlaran/cellplex/bitcomb"
)

// ExampleForEachCombination lists the edges of a triangle by selecting every
// 2-subset of its vertex positions.
func ExampleForEachCombination() {
	tri := []int{4, 8, 15}
	bitcomb.ForEachCombination(len(tri), 2, func(mask uint64) {
		fmt.Println(bitcomb.Select(nil, tri, mask))
	})
	// Output:
	// [4 8]
	// [4 15]
	// [8 15]
}
