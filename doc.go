// Package cellplex is a small combinatorial engine for abstract cell complexes:
// finite collections of cells, each cell a tuple of integer vertex ids.
//
// What is cellplex?
//
//	A pure-Go library (plus a CLI) that brings together:
//		• Canonical form: cardinality-first order, normalization, dedup
//		• Decomposition: sub-cell enumeration, n-skeleton, mod-2 boundary
//		• Lookup: binary search of a cell in a normalized complex
//		• Incidence: cell-to-supercell index, vertex stars
//		• Connectivity: components via a disjoint-set forest
//		• I/O: JSON and text face lists
//
// Everything is organized under these packages:
//
//	topology/     Cell, Complex, ordering, normalization and every operation
//	bitcomb/      bit-mask subset enumeration (Gosper's hack), binomials
//	unionfind/    disjoint-set forest with path halving and union by rank
//	complexio/    reading and writing complexes
//	cmd/cellplex  command-line front end (internal/cli, internal/config)
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	is the complex [[0 1 2] [0 2 3]]: two triangles glued along edge {0,2}.
//	Its 1-boundary is [[0 1] [0 3] [1 2] [2 3]], the outer square.
//
//	go get github.com/katalvlaran/cellplex/topology
package cellplex
