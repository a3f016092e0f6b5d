// Package topology is the combinatorial engine for abstract cell complexes:
// meshes given purely by vertex-index incidence, with no coordinates.
//
// What & Why
//
//   - A Cell is a list of vertex ids ([]int); a Complex is a list of cells of
//     any mixture of sizes (points, edges, triangles, tetrahedra, polytopes).
//   - Mesh-processing pipelines need a handful of topological queries over such
//     data: a canonical order to deduplicate and search cells, the faces of a
//     given dimension, the open boundary, who-contains-whom indexes, and the
//     connected pieces of the mesh.
//
// Canonical order
//
//	Cells are ordered by cardinality first, then by their sorted vertex tuples
//	compared element-wise (Compare). The order ignores vertex order inside a
//	cell, so [2,0,1] and [0,1,2] are the same cell. A normalized complex is
//	strictly increasing under this order. SymmetricCompare offers the older
//	sum/product ranking for callers that must reproduce it.
//
// Operations Provided
//
//   - Dimension, CountVertices, Clone              basic measures and deep copy
//   - Compare, SymmetricCompare                    cell orders
//   - Normalize, NormalizeWith, Unorient           canonical sort + dedup
//   - Orientation                                  permutation parity of a cell
//   - FindCell                                     binary search in a normalized complex
//   - Subcells, Skeleton, Boundary, Explode        face enumeration via bit masks
//   - BuildIndex, Stars                            incidence indexes
//   - ConnectedComponents (Dense / Sparse)         disjoint-set partitioning
//   - Set                                          incrementally built canonical complex
//   - Validate                                     fail-fast input checks
//
// Ownership
//
//	Normalize and NormalizeWith consume their input: the slice is sorted in
//	place and truncated, and only the returned slice should be used afterwards.
//	Call Clone first to keep the original. Unorient sorts each cell in place.
//	Every other operation only reads its inputs and returns freshly allocated
//	results.
//
// Options:
//
//   - WithComparator(cmp)  cell order used by every order-dependent operation.
//   - WithVertexCount(n)   fixed vertex range for Stars and ConnectedComponents.
//
// Errors:
//
//   - ErrCellTooLarge      cell wider than bitcomb.MaxWidth in a subset enumeration,
//                          or than MaxPowersetWidth in Explode and BuildIndex.
//   - ErrVertexOutOfRange  vertex id outside [0, vertexCount).
//   - ErrBadVertexCount    negative vertex count.
//   - ErrAttributeLength   attribute slice length differs from the cell count.
//   - ErrNegativeVertex, ErrDuplicateVertex  reported by Validate.
//
// Determinism: every result is a pure function of the input content and order.
// Nothing here is safe for concurrent mutation of the same complex.
package topology
