package poincare

import (
	"github.com/gogpu/infiniboard/internal/cmath"
)

// builder holds what every growth round shares: the frame constants, the
// primary edge in both frames, and the rotation powers.
type builder struct {
	f   frame
	npi int

	piA []complex64 // primary edge, centre frame
	piB []complex64 // primary edge, vertex frame

	powA []complex64 // rotA^0 .. rotA^(p-1)
	powD []complex64 // rotD^0 .. rotD^(q-1)
}

func newBuilder(p Params) *builder {
	f := newFrame(p.P, p.Q)
	piA, piB := primaryEdge(f, p.Res)
	return &builder{
		f:    f,
		npi:  len(piA),
		piA:  piA,
		piB:  piB,
		powA: cmath.Powers(f.rotA, p.P),
		powD: cmath.Powers(f.rotD, p.Q),
	}
}

// bucket starts a new bucket of exactly size points holding the edge.
func bucket(size int, edge []complex64) []complex64 {
	b := make([]complex64, 0, size)
	return append(b, edge...)
}

// toCentre re-centres a vertex-frame bucket (or its tail from start on) on
// the polygon centre at -d.
func (b *builder) toCentre(xs []complex64, start int) {
	recentre(Inverse(b.f.d), xs[start:])
}

// toVertex re-centres a centre-frame bucket (or its tail from start on) on
// the vertex at d.
func (b *builder) toVertex(xs []complex64, start int) {
	recentre(b.f.d, xs[start:])
}

// ring assembles the final buffer: n copies of the root bucket, one per
// rotation around the origin vertex.
func (b *builder) ring(root []complex64, n, size int) []complex64 {
	out := make([]complex64, 0, size)
	for k := 0; k < n; k++ {
		out = appendRotated(out, root, b.powD[k])
	}
	return out
}
