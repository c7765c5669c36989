package poincare

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

// hyperbolicDistance returns the distance between two disk points.
func hyperbolicDistance(a, b complex64) float64 {
	x, y := complex128(a), complex128(b)
	return 2 * math.Atanh(cmplx.Abs(x-y)/cmplx.Abs(1-cmplx.Conj(x)*y))
}

// edgeLength returns the edge length of the regular {p,q} tiling:
// cosh(l/2) = cos(π/p)/sin(π/q).
func edgeLength(p, q int) float64 {
	return 2 * math.Acosh(math.Cos(math.Pi/float64(p))/math.Sin(math.Pi/float64(q)))
}

var tilingCases = []Params{
	{3, 7, 5, 6},
	{7, 3, 5, 6},
	{3, 7, 2, 3},
	{3, 8, 3, 3},
	{3, 9, 4, 2},
	{7, 3, 2, 3},
	{8, 3, 3, 3},
	{9, 3, 4, 2},
	{4, 5, 2, 3},
	{5, 4, 2, 3},
	{4, 6, 3, 2},
	{5, 5, 4, 2},
	{6, 6, 2, 2},
}

func TestTilingInvariants(t *testing.T) {
	for _, p := range tilingCases {
		t.Run(p.String(), func(t *testing.T) {
			segs, err := Build(p)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			want, err := PointCount(p)
			if err != nil {
				t.Fatal(err)
			}
			if segs.Len() != want {
				t.Errorf("Len() = %d, want %d", segs.Len(), want)
			}
			if segs.Len()%2 != 0 {
				t.Errorf("odd length %d", segs.Len())
			}
			if m := segs.MaxAbs(); m >= 1+1e-4 {
				t.Errorf("MaxAbs() = %v, want < 1", m)
			}
		})
	}
}

func TestTilingDefaultBackground(t *testing.T) {
	segs, err := Tiling(3, 7, 5, 6)
	if err != nil {
		t.Fatalf("Tiling(3, 7, 5, 6): %v", err)
	}
	if segs.NumSegments() != 60088/2 {
		t.Errorf("NumSegments() = %d, want %d", segs.NumSegments(), 60088/2)
	}
	if m := segs.MaxAbs(); m >= 1 {
		t.Errorf("MaxAbs() = %v, want < 1", m)
	}
}

func TestTilingMoreRoundsIsLarger(t *testing.T) {
	for _, pq := range [][2]int{{3, 7}, {7, 3}, {4, 5}, {5, 4}} {
		one, err := Tiling(pq[0], pq[1], 3, 1)
		if err != nil {
			t.Fatal(err)
		}
		two, err := Tiling(pq[0], pq[1], 3, 2)
		if err != nil {
			t.Fatal(err)
		}
		if one.Len() >= two.Len() {
			t.Errorf("{%d,%d}: niter=1 gives %d points, niter=2 gives %d", pq[0], pq[1], one.Len(), two.Len())
		}
	}
}

// With res=2 every segment is a whole edge of the drawn graph, which joins
// adjacent polygon centres of {p,q}. That graph is the dual tiling {q,p},
// so every segment has the {q,p} edge length.
func TestTilingDrawsDualEdges(t *testing.T) {
	for _, p := range []Params{{3, 7, 2, 2}, {7, 3, 2, 2}, {4, 5, 2, 2}, {5, 4, 2, 2}, {3, 8, 2, 2}} {
		t.Run(p.String(), func(t *testing.T) {
			segs, err := Build(p)
			if err != nil {
				t.Fatal(err)
			}
			want := edgeLength(p.Q, p.P)
			for i := 0; i < segs.NumSegments(); i++ {
				a, b := segs.Segment(i)
				if got := hyperbolicDistance(a, b); math.Abs(got-want) > 1e-3*want+1e-3 {
					t.Fatalf("segment %d (%v, %v) has length %v, want %v", i, a, b, got, want)
				}
			}
		})
	}
}

// A segment that turns up twice would be drawn twice; the buckets are laid
// out so that every edge has exactly one owner.
func TestTilingNoDuplicateSegments(t *testing.T) {
	const eps = 1e-4
	same := func(a, b complex64) bool {
		return cmplx.Abs(complex128(a-b)) < eps
	}
	for _, p := range []Params{{3, 7, 3, 2}, {7, 3, 3, 2}, {4, 5, 3, 2}, {5, 4, 3, 2}, {3, 9, 2, 2}, {9, 3, 2, 2}} {
		t.Run(p.String(), func(t *testing.T) {
			segs, err := Build(p)
			if err != nil {
				t.Fatal(err)
			}
			n := segs.NumSegments()
			for i := 0; i < n; i++ {
				a0, a1 := segs.Segment(i)
				for j := i + 1; j < n; j++ {
					b0, b1 := segs.Segment(j)
					if (same(a0, b0) && same(a1, b1)) || (same(a0, b1) && same(a1, b0)) {
						t.Fatalf("segments %d and %d coincide: (%v, %v)", i, j, a0, a1)
					}
				}
			}
		})
	}
}

// The segments around the origin vertex form a q-fold symmetric ring.
func TestTilingRotationalSymmetry(t *testing.T) {
	for _, p := range []Params{{3, 7, 2, 1}, {7, 3, 2, 1}, {4, 5, 2, 1}} {
		segs, err := Build(p)
		if err != nil {
			t.Fatal(err)
		}
		block := segs.Len() / p.Q
		rot := Rotation(-2 * math.Pi / float64(p.Q))
		for i := 0; i < block; i++ {
			if got, want := segs[block+i], rot*segs[i]; !closeTo(got, want, 1e-5) {
				t.Fatalf("%v: point %d of the second block = %v, want %v", p, i, got, want)
			}
		}
	}
}

func TestTilingStartsAtAdjacentCentres(t *testing.T) {
	p := Params{3, 7, 2, 1}
	segs, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}
	f := newFrame(p.P, p.Q)
	a, _ := segs.Segment(0)
	if !closeTo(a, f.d, 1e-6) {
		t.Errorf("first point = %v, want polygon centre %v", a, f.d)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		opts []Option
		want error
	}{
		{"polygon", Params{2, 7, 5, 1}, nil, ErrPolygon},
		{"euclidean", Params{4, 4, 5, 1}, nil, ErrNotHyperbolic},
		{"res", Params{3, 7, 1, 1}, nil, ErrResolution},
		{"niter", Params{3, 7, 5, 0}, nil, ErrIterations},
		{"limit", Params{3, 7, 5, 6}, []Option{WithMaxPoints(1000)}, ErrTooLarge},
		{"overflow", Params{3, 7, 5, 500}, nil, ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, err := Build(tt.p, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Build error = %v, want %v", err, tt.want)
			}
			if segs != nil {
				t.Errorf("Build returned %d points with an error", segs.Len())
			}
		})
	}
}

func TestWithMaxPoints(t *testing.T) {
	p := Params{3, 7, 5, 1}
	if _, err := Build(p, WithMaxPoints(336)); err != nil {
		t.Errorf("limit equal to size: %v", err)
	}
	if _, err := Build(p, WithMaxPoints(335)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("limit below size: %v", err)
	}
	if _, err := Build(p, WithMaxPoints(0)); err != nil {
		t.Errorf("zero keeps default: %v", err)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	p := Params{4, 5, 3, 2}
	a, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
	a[0] = 42
	if b[0] == 42 {
		t.Error("results share storage")
	}
}
