// Package poincare builds regular {p,q} tilings of the hyperbolic plane in
// the Poincaré disk model.
//
// # Overview
//
// A tiling is returned as [Segments]: a flat buffer of complex64 points in
// which each consecutive pair (2i, 2i+1) is one straight chord. The buffer
// can be handed to a renderer as-is, since a complex64 has the memory layout
// of an interleaved x,y float32 pair.
//
//	segs, err := poincare.Tiling(3, 7, 5, 6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(segs.NumSegments())
//
// # Construction
//
// The builder starts from one primary edge joining the centre of a polygon
// to the centre of its neighbour, and grows the rest of the tiling by
// repeatedly rotating and re-centring point buckets with the Möbius disk
// automorphism [S]. Each growth round adds one more ring of polygons.
// Every edge of the drawn graph is produced exactly once.
//
// Three strategies cover the Schläfli symbols:
//
//   - [General] for p ≥ 4 and q ≥ 4
//   - [Triangular] for p = 3 (which needs q ≥ 7)
//   - [Trivalent] for q = 3 (which needs p ≥ 7)
//
// The degenerate cases cannot be obtained from the general recurrence by
// substitution: with three polygons per vertex, or three vertices per
// polygon, some buckets would need a negative number of copies.
//
// # Sizes
//
// Bucket sizes follow a fixed recurrence in (p, q, res). [PointCount]
// evaluates it without building anything, and [Build] refuses parameters
// whose buffer would exceed the configured point limit with [ErrTooLarge].
//
// # Concurrency
//
// Tiling and Build keep no global state apart from the logger and are safe
// to call from multiple goroutines.
package poincare
