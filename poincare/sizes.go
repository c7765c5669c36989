package poincare

import (
	"fmt"
	"log/slog"
	"math"
)

// saturated marks a count that overflowed int. Every count derived from a
// saturated one is saturated as well.
const saturated = math.MaxInt

func addSat(xs ...int) int {
	sum := 0
	for _, x := range xs {
		if x > saturated-sum {
			return saturated
		}
		sum += x
	}
	return sum
}

func mulSat(k, x int) int {
	if k == 0 || x == 0 {
		return 0
	}
	if x > saturated/k {
		return saturated
	}
	return k * x
}

// edgePoints is the number of points in the discretised primary edge.
func edgePoints(res int) int {
	return mulSat(2, res-1)
}

// generalSizes tracks the bucket sizes of the general strategy.
type generalSizes struct {
	alpha, beta, gamma, delta int
}

func newGeneralSizes(npi int) generalSizes {
	return generalSizes{alpha: npi, beta: npi}
}

// next returns the sizes after one more round, computed in build order.
func (s generalSizes) next(p, q, npi int) generalSizes {
	var n generalSizes
	n.gamma = addSat(npi, s.beta, mulSat(q-4, s.alpha))
	n.delta = addSat(n.gamma, s.alpha)
	n.beta = addSat(npi, n.gamma, mulSat(p-4, n.delta))
	n.alpha = addSat(n.beta, n.delta)
	return n
}

// trivalentSizes tracks the bucket sizes of the trivalent strategy. Vertex
// bucket zeta is the bare edge and has constant size npi.
type trivalentSizes struct {
	alpha, beta, epsilon int
	eta, theta           int
}

func newTrivalentSizes(npi int) trivalentSizes {
	return trivalentSizes{alpha: npi, beta: npi, epsilon: npi}
}

func (s trivalentSizes) next(p, npi int) trivalentSizes {
	var n trivalentSizes
	n.eta = addSat(npi, s.beta)
	n.theta = addSat(npi, s.epsilon)
	// Each polygon bucket holds its edge, the bare vertex zeta, a run of eta
	// copies and one closing theta.
	n.alpha = addSat(mulSat(2, npi), mulSat(p-4, n.eta), n.theta)
	n.beta = addSat(mulSat(2, npi), mulSat(p-5, n.eta), n.theta)
	n.epsilon = addSat(mulSat(2, npi), mulSat(p-6, n.eta), n.theta)
	return n
}

// triangularSizes tracks the bucket sizes of the triangular strategy.
type triangularSizes struct {
	alpha, beta  int
	eta, epsilon int
}

func newTriangularSizes(npi int) triangularSizes {
	return triangularSizes{alpha: npi, beta: npi}
}

func (s triangularSizes) next(q, npi int) triangularSizes {
	var n triangularSizes
	// Each vertex bucket holds its edge, one bare triangle, a run of alpha
	// copies and one closing beta.
	n.eta = addSat(mulSat(2, npi), mulSat(q-5, s.alpha), s.beta)
	n.epsilon = addSat(mulSat(2, npi), mulSat(q-6, s.alpha), s.beta)
	n.alpha = addSat(npi, n.eta)
	n.beta = addSat(npi, n.epsilon)
	return n
}

func (s generalSizes) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("alpha", s.alpha), slog.Int("beta", s.beta),
		slog.Int("gamma", s.gamma), slog.Int("delta", s.delta))
}

func (s trivalentSizes) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("alpha", s.alpha), slog.Int("beta", s.beta), slog.Int("epsilon", s.epsilon),
		slog.Int("eta", s.eta), slog.Int("theta", s.theta))
}

func (s triangularSizes) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("alpha", s.alpha), slog.Int("beta", s.beta),
		slog.Int("eta", s.eta), slog.Int("epsilon", s.epsilon))
}

// predict runs the size recurrence of p's strategy for p.Niter rounds and
// returns the final point count, or saturated on overflow. p must be valid.
func predict(p Params) int {
	n, _ := predictBuckets(p)
	return n
}

// predictBuckets is predict that also returns the final bucket sizes.
// Counts grow every round, so the loop stops as soon as alpha saturates.
func predictBuckets(p Params) (int, slog.LogValuer) {
	npi := edgePoints(p.Res)
	switch p.Strategy() {
	case Triangular:
		s := newTriangularSizes(npi)
		for i := 0; i < p.Niter; i++ {
			s = s.next(p.Q, npi)
			if s.alpha == saturated {
				return saturated, s
			}
		}
		return mulSat(p.Q, s.alpha), s
	case Trivalent:
		s := newTrivalentSizes(npi)
		for i := 0; i < p.Niter; i++ {
			s = s.next(p.P, npi)
			if s.alpha == saturated {
				return saturated, s
			}
		}
		return mulSat(3, s.alpha), s
	default:
		s := newGeneralSizes(npi)
		for i := 0; i < p.Niter; i++ {
			s = s.next(p.P, p.Q, npi)
			if s.alpha == saturated {
				return saturated, s
			}
		}
		return mulSat(p.Q, s.alpha), s
	}
}

// PointCount returns the number of points Build produces for p, without
// building anything. The segment count is half of it.
//
// It returns an error wrapping ErrTooLarge if the count does not fit in an
// int, and a validation error if p is invalid.
func PointCount(p Params) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	n := predict(p)
	if n == saturated {
		return 0, fmt.Errorf("%w: %v overflows the point count", ErrTooLarge, p)
	}
	return n, nil
}
