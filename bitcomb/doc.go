// Package bitcomb provides the small bit-twiddling primitives behind subset
// enumeration of cells: population count, Gosper's next-combination step and
// mask-driven selection of cell positions.
//
// What & Why
//
//   - A cell of k vertices has 2^k subsets. A subset is encoded as a k-bit mask
//     where bit j selects position j of the cell.
//   - Enumerating all subsets of size m in increasing numeric order is done by
//     starting at the lowest mask with m bits set, (1<<m)-1, and repeatedly
//     stepping to the next larger mask with the same population count until the
//     mask reaches 1<<k.
//
// Functions Provided
//
//   - PopCount(mask) int
//   - NextCombination(mask) uint64
//   - Select(dst, cell, mask) []int
//   - ForEachCombination(width, k, fn)
//   - Binomial(n, k) int
//
// Limits:
//
//   - Masks are uint64, so cells wider than MaxWidth positions cannot be
//     enumerated. Callers must check the width before enumerating.
//
// Complexity:
//
//   - PopCount, NextCombination: O(1).
//   - Select: O(width).
//   - ForEachCombination: O(C(width, k)) steps.
package bitcomb
