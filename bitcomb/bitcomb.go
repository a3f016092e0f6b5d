package bitcomb

import "math/bits"

// MaxWidth is the widest cell whose subsets can be enumerated with uint64 masks.
// 1<<MaxWidth must still be representable, so the limit is 63 positions.
const MaxWidth = 63

// PopCount returns the number of set bits in mask.
func PopCount(mask uint64) int {
	return bits.OnesCount64(mask)
}

// NextCombination returns the smallest mask greater than v that has the same
// number of set bits (Gosper's hack). NextCombination(0) is 0.
//
// When v is the highest mask of its weight (all ones packed at the top), no
// larger one fits in 64 bits: the carry falls off and the result is smaller
// than v, with a different weight. NextCombination(1<<63) is 0. Callers walk
// until the result leaves their width limit, or stop at the top mask.
//
// Steps:
//  1. t sets every bit below the lowest set bit of v.
//  2. t+1 moves the lowest run of ones one place up, clearing the run.
//  3. The remaining ones of the run are refilled at the bottom.
//
// Complexity: O(1).
func NextCombination(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	// 1. Fill the trailing zeros.
	t := v | (v - 1)
	// 2-3. Carry into the next zero and refill the low bits.
	return (t + 1) | (((^t & -^t) - 1) >> (bits.TrailingZeros64(v) + 1))
}

// Select appends to dst the elements of cell at the positions selected by mask
// (bit j selects cell[j]), preserving their relative order, and returns the
// extended slice. Bits at or above len(cell) are ignored.
func Select(dst, cell []int, mask uint64) []int {
	for j := 0; j < len(cell) && j < 64; j++ {
		if mask&(1<<uint(j)) != 0 {
			dst = append(dst, cell[j])
		}
	}

	return dst
}

// ForEachCombination calls fn with every mask of exactly k set bits below
// 1<<width, in increasing numeric order. Nothing is visited when k < 0,
// k > width or width > MaxWidth. The k == 0 case visits the empty mask once.
func ForEachCombination(width, k int, fn func(mask uint64)) {
	if k < 0 || k > width || width > MaxWidth {
		return
	}
	if k == 0 {
		fn(0)
		return
	}
	limit := uint64(1) << uint(width)
	for mask := uint64(1)<<uint(k) - 1; mask < limit; mask = NextCombination(mask) {
		fn(mask)
	}
}

// Binomial returns C(n, k), the number of k-subsets of an n-set, or 0 when
// k is outside [0, n] or n > MaxWidth. Products are carried in 128 bits, so
// every supported result is exact.
func Binomial(n, k int) int {
	if k < 0 || k > n || n > MaxWidth {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var r uint64 = 1
	for i := 1; i <= k; i++ {
		// r*(n-k+i) is always divisible by i at this point.
		hi, lo := bits.Mul64(r, uint64(n-k+i))
		r, _ = bits.Div64(hi, lo, uint64(i))
	}

	return int(r)
}
