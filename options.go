package infiniboard

import (
	"github.com/gogpu/infiniboard/poincare"
)

// Option configures a Board during creation.
//
// Example:
//
//	b, err := infiniboard.New(
//	    infiniboard.WithTiling(poincare.Params{P: 4, Q: 5, Res: 9, Niter: 4}),
//	    infiniboard.WithViewport(infiniboard.Viewport{Width: 1024, Height: 768, Zoom: 0.99}),
//	)
type Option func(*boardOptions)

// boardOptions holds optional configuration for Board creation.
type boardOptions struct {
	params      poincare.Params
	viewport    Viewport
	maxPoints   int
	cacheBudget int
}

// DefaultTiling is the background used when no tiling is given: the order-3
// heptagonal tiling, five points per edge, six growth rounds.
var DefaultTiling = poincare.Params{P: 3, Q: 7, Res: 5, Niter: 6}

// DefaultCacheBudget is the number of tiling points a board keeps cached.
const DefaultCacheBudget = 1 << 22

func defaultOptions() boardOptions {
	return boardOptions{
		params:      DefaultTiling,
		viewport:    DefaultViewport(),
		maxPoints:   poincare.DefaultMaxPoints,
		cacheBudget: DefaultCacheBudget,
	}
}

// WithTiling sets the background tiling.
func WithTiling(p poincare.Params) Option {
	return func(o *boardOptions) {
		o.params = p
	}
}

// WithViewport sets the initial window size and zoom.
func WithViewport(v Viewport) Option {
	return func(o *boardOptions) {
		o.viewport = v
	}
}

// WithMaxPoints caps the size of background tilings, see
// [poincare.WithMaxPoints].
func WithMaxPoints(n int) Option {
	return func(o *boardOptions) {
		o.maxPoints = n
	}
}

// WithCacheBudget sets how many tiling points the board keeps cached across
// SetTiling calls. Zero disables the limit.
func WithCacheBudget(points int) Option {
	return func(o *boardOptions) {
		o.cacheBudget = points
	}
}
