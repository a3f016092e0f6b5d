package topology

import "errors"

// Cell is an ordered sequence of vertex ids. It is semantically an unordered
// set: comparison ignores the order of its elements, while subset enumeration
// preserves it.
type Cell []int

// Complex is a sequence of cells of any mixture of cardinalities.
type Complex []Cell

// NotFound is returned by FindCell when the query cell is absent.
const NotFound = -1

// MaxPowersetWidth is the widest cell Explode and BuildIndex accept. Both walk
// every non-empty subset of a cell, 2^k - 1 of them for k vertices.
const MaxPowersetWidth = 24

// Sentinel errors for topology operations.
var (
	// ErrCellTooLarge indicates a cell too wide for subset enumeration: more
	// than bitcomb.MaxWidth vertices, or more than MaxPowersetWidth for the
	// operations that enumerate every subset.
	ErrCellTooLarge = errors.New("topology: cell too large for subset enumeration")

	// ErrVertexOutOfRange indicates a vertex id outside [0, vertexCount).
	ErrVertexOutOfRange = errors.New("topology: vertex id out of range")

	// ErrNegativeVertex indicates a negative vertex id.
	ErrNegativeVertex = errors.New("topology: negative vertex id")

	// ErrDuplicateVertex indicates a vertex id repeated inside one cell.
	ErrDuplicateVertex = errors.New("topology: duplicate vertex in cell")

	// ErrAttributeLength indicates a parallel attribute slice whose length
	// differs from the number of cells.
	ErrAttributeLength = errors.New("topology: attribute count does not match cell count")

	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("topology: vertex count must be non-negative")
)

// Comparator is a total order over cells: negative if a < b, zero if a and b
// are equivalent, positive if a > b.
type Comparator func(a, b Cell) int

// Options configures order-dependent and vertex-count-dependent operations.
// Use DefaultOptions to obtain the defaults and Option functions to adjust them.
type Options struct {
	// Compare orders cells. Every operation applied to the same complex must
	// use the same comparator. Default: Compare.
	Compare Comparator

	// VertexCount fixes the vertex range to [0, VertexCount) when
	// HasVertexCount is set. Stars uses it instead of CountVertices and
	// ConnectedComponents switches to the dense variant.
	VertexCount int

	// HasVertexCount marks VertexCount as supplied. Default: false.
	HasVertexCount bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with Compare as the comparator and no fixed
// vertex count.
func DefaultOptions() Options {
	return Options{
		Compare:        Compare,
		VertexCount:    0,
		HasVertexCount: false,
	}
}

// WithComparator selects the cell order. A nil cmp keeps the default.
func WithComparator(cmp Comparator) Option {
	return func(o *Options) {
		if cmp != nil {
			o.Compare = cmp
		}
	}
}

// WithVertexCount fixes the number of vertices to n. Zero means "not
// supplied": the count is then derived from the complex and
// ConnectedComponents stays on the sparse path. A negative n is kept and
// rejected by the operations with ErrBadVertexCount.
func WithVertexCount(n int) Option {
	return func(o *Options) {
		o.VertexCount = n
		o.HasVertexCount = n != 0
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
