// Package unionfind implements a disjoint-set forest over the dense integer
// range [0, n), with path compression and union by rank.
//
// What & Why
//
//   - Connected-component labeling of cell complexes links every pair of
//     vertices that share a cell. A disjoint-set forest answers "which
//     component is this vertex in" in amortized near-constant time.
//
// Operations
//
//   - New(n)          build n singleton sets.
//   - Find(x)         root of x's set, compressing the path on the way.
//   - Union(a, b)     merge the sets of a and b; reports whether they were apart.
//   - Connected(a, b) same root?
//   - Size(x)         number of elements in x's set.
//   - Count()         number of disjoint sets.
//
// Complexity:
//
//   - Find/Union: O(α(n)) amortized (α = inverse Ackermann).
//   - Memory: O(n) for parent, rank and size arrays.
//
// Determinism: the partition induced by the roots depends only on the sequence
// of Union calls; which element becomes a root is an implementation detail.
//
// Indices outside [0, n) are programmer errors and panic like any slice access.
package unionfind
