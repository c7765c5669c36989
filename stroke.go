package infiniboard

import (
	"github.com/gogpu/infiniboard/internal/cmath"
	"github.com/gogpu/infiniboard/poincare"
)

// Stroke is one freehand line, as an ordered list of board-frame points.
// Widening the line into triangles is left to the renderer.
type Stroke struct {
	points []complex64
}

// Len returns the number of points.
func (s *Stroke) Len() int {
	return len(s.points)
}

// Points returns a copy of the stroke points.
func (s *Stroke) Points() []complex64 {
	return append([]complex64(nil), s.points...)
}

// Segments converts the stroke into disjoint segments. A stroke with fewer
// than two points has none.
func (s *Stroke) Segments() poincare.Segments {
	return s.appendSegments(nil)
}

func (s *Stroke) appendSegments(dst poincare.Segments) poincare.Segments {
	if len(s.points) < 2 {
		return dst
	}
	return cmath.AppendLines(dst, s.points)
}

func (s *Stroke) add(z complex64) {
	s.points = append(s.points, z)
}
