// Package ndarray provides a chunk-partitioned, lazily evaluated
// n-dimensional numeric array.
//
// An [Array] describes a computation over blocks rather than holding the
// full result: constructors and elementwise operations compose a task
// description keyed by chunk, and nothing is computed until the array is
// materialized. Each chunk is independent, so evaluation parallelizes
// across blocks and never requires the whole array in memory at once.
//
// The package supplies the primitives needed by frequency-domain
// filtering of chunked data: chunk-aware 1-D sequence generators
// ([FFTFreq], [Coords]), broadcast placement of a 1-D sequence along one
// axis of an n-dimensional space ([Array.Along]), stacking along a new
// leading axis ([Stack]), and contraction of a coefficient vector
// against that leading axis ([Contract]).
package ndarray
