// Package infiniboard is an infinite whiteboard drawn on the hyperbolic
// plane, seen through the Poincaré disk.
//
// # Overview
//
// A [Board] holds everything a frame needs: a regular {p,q} tiling used as
// the background, the pan point the view is centred on, and the freehand
// strokes drawn so far. The window, the GPU device and the shaders live
// outside this package; they feed input into the board and draw what
// [Board.Frame] returns.
//
//	b, err := infiniboard.New(infiniboard.WithTiling(poincare.Params{P: 3, Q: 7, Res: 5, Niter: 6}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b.Attach(window) // any gpucontext.EventSource
//	for !b.ShouldClose() {
//	    f := b.Frame()
//	    // upload f.Background and f.Strokes, set the pan, ratio and zoom uniforms
//	}
//
// # Coordinates
//
// Screen positions are [Point] values in pixels, origin top-left, y down.
// [Viewport.ToDisk] maps them into the disk with the window centre at 0 and
// the half height at 1/zoom, y up. Strokes are stored in the board frame:
// a stroke point drawn at disk position z while the view is panned to a is
// stored as S(-a, z), so drawing S(a, ·) of the stored point puts it back
// under the cursor. The tiling is built once and never moved; panning only
// changes the uniform.
//
// # Configuration
//
// Boards are configured with functional options, or from a TOML file with
// [LoadConfig] and [Config.Options].
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a *slog.Logger for
// the board, the tiling builder and the preview renderer.
package infiniboard
