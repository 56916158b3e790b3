// Package ports places a device's ports along the two vertical edges of a
// diagram node and checks the result for overlaps.
//
// # Placement Rule
//
// [Calculate] splits n ports between the edges, filling the left edge first:
//
//	left  = ceil(n / 2)
//	right = n - left
//
// Each edge spaces its ports evenly, so the k-th port (1-based) of an edge
// holding m ports sits at
//
//	offset = k / (m + 1) * 100
//
// percent of the edge length, measured from the top. Offsets are rounded to
// two decimals with [Round].
//
// For 4 ports this yields:
//
//	Port 1  left  33.33%
//	Port 2  left  66.67%
//	Port 3  right 33.33%
//	Port 4  right 66.67%
//
// Equal offsets on opposite edges are fine; only ports on the same edge can
// overlap.
//
// # Verification
//
// [Verify] partitions a [Layout] by edge and reports whether each edge's
// offsets are pairwise distinct. It never fails; overlaps are findings, not
// errors.
//
// Rounding to two decimals cannot merge neighbouring offsets while an edge
// carries at most [MaxDistinctPerEdge] ports. Past 9999 ports on one edge a
// collision is certain, and [Verify] reports it.
//
// # Serialization
//
// [RenderJSON] exports a layout as the JSON document consumed by diagram
// front-ends, where each offset maps directly to a CSS `top: X%`.
package ports
