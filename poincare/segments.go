package poincare

import (
	"math"

	"github.com/gogpu/infiniboard/internal/cmath"
)

// Segments is a flat buffer of disk points in which points 2i and 2i+1 are
// the ends of segment i. A complex64 has the layout of an x,y float32 pair,
// so the buffer can be uploaded as an interleaved vertex array.
//
// The caller owns a Segments returned by this package; the package keeps no
// reference to it.
type Segments []complex64

// Len returns the number of points.
func (s Segments) Len() int {
	return len(s)
}

// NumSegments returns the number of segments.
func (s Segments) NumSegments() int {
	return len(s) / 2
}

// Segment returns the ends of segment i.
func (s Segments) Segment(i int) (a, b complex64) {
	return s[2*i], s[2*i+1]
}

// Transform returns a new buffer holding S(a, x) for every point x of s.
// Transform(Inverse(a)) undoes Transform(a) up to rounding.
func (s Segments) Transform(a complex64) Segments {
	out := make(Segments, len(s))
	copy(out, s)
	recentre(a, out)
	return out
}

// Bounds returns the componentwise minimum and maximum over all points.
// An empty buffer yields zero bounds.
func (s Segments) Bounds() (lo, hi complex64) {
	if len(s) == 0 {
		return 0, 0
	}
	minX, minY := real(s[0]), imag(s[0])
	maxX, maxY := minX, minY
	for _, z := range s[1:] {
		x, y := real(z), imag(z)
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}
	return complex(minX, minY), complex(maxX, maxY)
}

// MaxAbs returns the largest modulus of any point. A tiling built by this
// package keeps it below 1.
func (s Segments) MaxAbs() float32 {
	var m float32
	for _, z := range s {
		m = max(m, cmath.ModSq(z))
	}
	return float32(math.Sqrt(float64(m)))
}
