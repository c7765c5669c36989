package poincare

import (
	"fmt"
	"math"

	"github.com/gogpu/infiniboard/internal/cmath"
)

// Params describes one tiling.
type Params struct {
	// P is the number of sides of each polygon.
	P int
	// Q is the number of polygons meeting at each vertex.
	Q int
	// Res is the number of points discretising one edge (>= 2).
	Res int
	// Niter is the number of growth rounds (>= 1).
	Niter int
}

// String returns the Schläfli symbol with the discretisation, e.g.
// "{3,7} res=5 niter=6".
func (p Params) String() string {
	return fmt.Sprintf("{%d,%d} res=%d niter=%d", p.P, p.Q, p.Res, p.Niter)
}

// Validate reports whether p describes a buildable hyperbolic tiling.
func (p Params) Validate() error {
	if p.P < 3 || p.Q < 3 {
		return fmt.Errorf("%w: got {%d,%d}", ErrPolygon, p.P, p.Q)
	}
	// 2p+2q < pq is (p-2)(q-2) > 4, checked without forming the product.
	if p.P-2 <= 4/(p.Q-2) {
		return fmt.Errorf("%w: got {%d,%d}", ErrNotHyperbolic, p.P, p.Q)
	}
	if p.Res < 2 {
		return fmt.Errorf("%w: got %d", ErrResolution, p.Res)
	}
	if p.Niter < 1 {
		return fmt.Errorf("%w: got %d", ErrIterations, p.Niter)
	}
	return nil
}

// Strategy selects the bucket bookkeeping used to grow a tiling.
type Strategy int

const (
	// General handles p >= 4 and q >= 4.
	General Strategy = iota
	// Triangular handles p == 3.
	Triangular
	// Trivalent handles q == 3.
	Trivalent
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case General:
		return "general"
	case Triangular:
		return "triangular"
	case Trivalent:
		return "trivalent"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Strategy returns the strategy Build dispatches to for p.
func (p Params) Strategy() Strategy {
	switch {
	case p.P == 3:
		return Triangular
	case p.Q == 3:
		return Trivalent
	default:
		return General
	}
}

// frame holds the closed-form constants of a {p,q} tiling.
//
// The centre frame has a polygon centre at the origin, the vertex frame has
// a tiling vertex there. S(d, ·) takes the centre frame to the vertex frame
// and S(-d, ·) takes it back.
type frame struct {
	theta float64 // 2π/p, angle between adjacent vertices seen from a centre
	phi   float64 // 2π/q, angle between adjacent polygons seen from a vertex

	d complex64 // tanh(R/2), R the circumradius
	c float32   // disk distance between adjacent polygon centres

	rotA complex64 // exp(iθ), steps around a centre
	rotD complex64 // exp(-iφ), steps around a vertex
}

func newFrame(p, q int) frame {
	theta := 2 * math.Pi / float64(p)
	phi := 2 * math.Pi / float64(q)
	u := math.Cos((theta + phi) / 2)
	v := math.Cos((theta - phi) / 2)

	// Law of cosines in the right triangle (centre, edge midpoint, vertex):
	// cosh r = cos(φ/2)/sin(θ/2) for the inradius r. Adjacent centres are 2r
	// apart, which in the disk is tanh(r) = sqrt(uv)/cos(φ/2).
	c := math.Sqrt(u*v) / math.Cos(phi/2)

	return frame{
		theta: theta,
		phi:   phi,
		d:     complex(float32(math.Sqrt(u/v)), 0),
		c:     float32(c),
		rotA:  cmath.Expi(theta),
		rotD:  cmath.Expi(-phi),
	}
}
