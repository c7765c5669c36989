package poincare

import (
	"github.com/gogpu/infiniboard/internal/cmath"
)

// primaryEdge returns the discretised edge between the origin polygon and
// its neighbour across side 0, as disjoint segments in the centre frame
// (piA) and in the vertex frame (piB = S(d, piA)).
func primaryEdge(f frame, res int) (piA, piB []complex64) {
	end := cmath.Scale(cmath.Expi(f.theta/2), -f.c)
	piA = cmath.LineStripToLines(cmath.Linspace(0, end, res))

	piB = make([]complex64, len(piA))
	copy(piB, piA)
	recentre(f.d, piB)
	return piA, piB
}
