package poincare

import "errors"

// Errors returned by Build and Tiling. Validation failures are wrapped with
// the offending values, so compare with errors.Is.
var (
	// ErrPolygon is returned when p or q is below 3.
	ErrPolygon = errors.New("poincare: polygon needs p >= 3 and q >= 3")

	// ErrNotHyperbolic is returned when 2p+2q >= pq: the tiling would be
	// Euclidean or spherical.
	ErrNotHyperbolic = errors.New("poincare: {p,q} is not hyperbolic")

	// ErrResolution is returned when the edge resolution is below 2.
	ErrResolution = errors.New("poincare: edge resolution must be at least 2")

	// ErrIterations is returned when niter is zero.
	ErrIterations = errors.New("poincare: at least one growth round is required")

	// ErrTooLarge is returned when the predicted buffer exceeds the point
	// limit.
	ErrTooLarge = errors.New("poincare: tiling too large")
)
