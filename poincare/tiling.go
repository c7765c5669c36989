package poincare

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultMaxPoints is the default point limit of Build: 1<<26 points, or
// 512 MiB of float32 pairs.
const DefaultMaxPoints = 1 << 26

// Option configures Build.
//
// Example:
//
//	segs, err := poincare.Build(params, poincare.WithMaxPoints(1<<20))
type Option func(*buildOptions)

type buildOptions struct {
	maxPoints int
}

func defaultBuildOptions() buildOptions {
	return buildOptions{maxPoints: DefaultMaxPoints}
}

// WithMaxPoints sets the largest buffer, in points, Build agrees to
// allocate. Non-positive values keep the default.
func WithMaxPoints(n int) Option {
	return func(o *buildOptions) {
		if n > 0 {
			o.maxPoints = n
		}
	}
}

// Tiling builds the {p,q} tiling with res points per edge and niter growth
// rounds, using the default options.
func Tiling(p, q, res, niter int) (Segments, error) {
	return Build(Params{P: p, Q: q, Res: res, Niter: niter})
}

// Build validates params, checks the predicted size against the point limit
// and grows the tiling with the strategy params selects.
//
// The returned buffer holds exactly PointCount(params) points.
func Build(params Params, opts ...Option) (Segments, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n, err := PointCount(params)
	if err != nil {
		return nil, err
	}
	if n > o.maxPoints {
		return nil, fmt.Errorf("%w: %v needs %d points, limit is %d", ErrTooLarge, params, n, o.maxPoints)
	}

	strategy := params.Strategy()
	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		_, buckets := predictBuckets(params)
		log.Debug("poincare: building tiling",
			slog.String("params", params.String()),
			slog.String("strategy", strategy.String()),
			slog.Any("buckets", buckets),
			slog.Int("points", n))
	}

	b := newBuilder(params)
	var out []complex64
	switch strategy {
	case Triangular:
		out = b.buildTriangular(params.Q, params.Niter)
	case Trivalent:
		out = b.buildTrivalent(params.P, params.Niter)
	default:
		out = b.buildGeneral(params.P, params.Q, params.Niter)
	}

	if len(out) != n {
		panic(fmt.Sprintf("poincare: %v built %d points, predicted %d", params, len(out), n))
	}
	log.Debug("poincare: tiling built",
		slog.String("params", params.String()),
		slog.Int("segments", len(out)/2))
	return Segments(out), nil
}
