package poincare

import (
	"github.com/gogpu/infiniboard/internal/cmath"
)

// S is the disk automorphism S(a, x) = (x + a) / (1 + conj(a)·x).
//
// It maps 0 to a and keeps the unit disk invariant. S(-a, ·) undoes S(a, ·),
// which is how a pan point is re-centred without rebuilding the tiling.
// The caller guarantees |a| < 1; the result is undefined otherwise.
func S(a, x complex64) complex64 {
	return (x + a) / (1 + cmath.Conj(a)*x)
}

// Inverse returns the parameter of the automorphism undoing S(a, ·).
func Inverse(a complex64) complex64 {
	return -a
}

// Rotation returns exp(i·angle), the disk rotation by angle radians.
func Rotation(angle float64) complex64 {
	return cmath.Expi(angle)
}

// recentre applies S(a, ·) to every point of xs in place.
func recentre(a complex64, xs []complex64) {
	ca := cmath.Conj(a)
	for i, x := range xs {
		xs[i] = (x + a) / (1 + ca*x)
	}
}

// appendRotated appends rot·x for every x in src.
func appendRotated(dst, src []complex64, rot complex64) []complex64 {
	for _, x := range src {
		dst = append(dst, rot*x)
	}
	return dst
}
