// Package cmath provides the single-precision complex helpers shared by the
// tiling builder and the board.
//
// Points in the Poincaré disk are complex64 values, so every helper here
// works in 32-bit floats. The render path consumes the same representation
// directly as interleaved x,y float32 pairs.
package cmath

import "math"

// Sq returns x*x.
func Sq(x float32) float32 {
	return x * x
}

// ModSq returns the squared modulus of z.
func ModSq(z complex64) float32 {
	return Sq(real(z)) + Sq(imag(z))
}

// Abs returns the modulus of z.
func Abs(z complex64) float32 {
	return float32(math.Sqrt(float64(ModSq(z))))
}

// Conj returns the complex conjugate of z.
func Conj(z complex64) complex64 {
	return complex(real(z), -imag(z))
}

// Expi returns exp(i*t).
func Expi(t float64) complex64 {
	s, c := math.Sincos(t)
	return complex(float32(c), float32(s))
}

// Scale multiplies z by the real factor s.
func Scale(z complex64, s float32) complex64 {
	return complex(real(z)*s, imag(z)*s)
}

// Fact returns n! in single precision.
func Fact(n uint) float32 {
	m := float32(1)
	for i := n; i > 0; i-- {
		m *= float32(i)
	}
	return m
}

// Pown computes z^n by recursive squaring: z^n = (z^2)^(n/2) * z^(n%2).
func Pown(z complex64, n uint) complex64 {
	if n == 0 {
		return 1
	}
	half := Pown(z*z, n>>1)
	if n&1 == 0 {
		return half
	}
	return half * z
}

// PownLinear computes z^n by n repeated multiplications. It is the reference
// Pown is checked against.
func PownLinear(z complex64, n uint) complex64 {
	y := complex64(1)
	for i := uint(0); i < n; i++ {
		y *= z
	}
	return y
}

// Powers returns z^0, z^1, ..., z^(n-1).
func Powers(z complex64, n int) []complex64 {
	if n <= 0 {
		return nil
	}
	out := make([]complex64, n)
	out[0] = 1
	for i := 1; i < n; i++ {
		out[i] = Pown(z, uint(i))
	}
	return out
}
