package cmath

import "fmt"

// Linspace returns n evenly spaced points from a to b, both ends included.
// A single sample yields just a. It panics if n < 1.
func Linspace(a, b complex64, n int) []complex64 {
	if n < 1 {
		panic(fmt.Sprintf("cmath: Linspace needs at least one sample, got %d", n))
	}
	y := make([]complex64, n)
	if n == 1 {
		y[0] = a
		return y
	}
	step := (b - a) / complex(float32(n-1), 0)
	for i := range y {
		y[i] = a + step*complex(float32(i), 0)
	}
	// The last sample is pinned so rounding in step cannot move the endpoint.
	y[n-1] = b
	return y
}

// LineStripToLines converts a strip of n connected points into n-1 disjoint
// segments, 2(n-1) points in total. Segment i is (x[i], x[i+1]), so every
// interior point appears twice. It panics if len(x) < 2.
func LineStripToLines(x []complex64) []complex64 {
	return AppendLines(nil, x)
}

// AppendLines is LineStripToLines appending to dst.
func AppendLines(dst, x []complex64) []complex64 {
	n := len(x)
	if n < 2 {
		panic(fmt.Sprintf("cmath: line strip needs at least two points, got %d", n))
	}
	dst = grow(dst, 2*(n-1))
	for i := 0; i < n-1; i++ {
		dst = append(dst, x[i], x[i+1])
	}
	return dst
}

func grow(s []complex64, extra int) []complex64 {
	if cap(s)-len(s) >= extra {
		return s
	}
	out := make([]complex64, len(s), len(s)+extra)
	copy(out, s)
	return out
}
