package unionfind

// DisjointSet is a disjoint-set forest over the elements 0..n-1.
// The zero value is an empty forest; use New to allocate elements.
type DisjointSet struct {
	parent []int
	rank   []int
	size   []int
	count  int
}

// New returns a forest of n singleton sets. A negative n is treated as 0.
//
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

// Len returns the number of elements.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the current number of disjoint sets.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Find returns the root of the set containing x.
// Iterative, with path halving: every visited node is re-pointed to its grandparent.
func (ds *DisjointSet) Find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// Union merges the sets containing a and b and reports whether a merge
// happened (false when they were already in the same set).
//
// Steps:
//  1. Resolve both roots.
//  2. Attach the lower-rank root under the higher-rank one.
//  3. On a rank tie, the surviving root's rank grows by one.
func (ds *DisjointSet) Union(a, b int) bool {
	// 1. Resolve roots.
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	// 2. Keep ra as the higher-rank root.
	if ds.rank[ra] < ds.rank[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
	// 3. Equal ranks deepen the tree by one.
	if ds.rank[ra] == ds.rank[rb] {
		ds.rank[ra]++
	}
	ds.count--

	return true
}

// Connected reports whether a and b belong to the same set.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// Size returns the number of elements in the set containing x.
func (ds *DisjointSet) Size(x int) int {
	return ds.size[ds.Find(x)]
}
