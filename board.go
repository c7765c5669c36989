package infiniboard

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/infiniboard/internal/cache"
	"github.com/gogpu/infiniboard/internal/cmath"
	"github.com/gogpu/infiniboard/internal/parallel"
	"github.com/gogpu/infiniboard/poincare"
	"github.com/gogpu/infiniboard/vbo"
)

// ErrInvalidViewport is returned by New for a viewport with a non-positive
// size or zoom.
var ErrInvalidViewport = errors.New("infiniboard: invalid viewport")

// maxPan bounds the modulus of the pan point. S(pan, ·) degenerates as the
// pan approaches the boundary circle.
const maxPan = 1 - 1e-3

// minStrokeStep is the pixel distance the pointer must travel before a new
// stroke point is recorded.
const minStrokeStep = 1.0

// Board is the state of one whiteboard: background tiling, view and strokes.
//
// Board is not safe for concurrent use. Input callbacks and Frame are
// expected to run on the window's event thread.
type Board struct {
	params     poincare.Params
	maxPoints  int
	viewport   Viewport
	tilings    *cache.Cache[poincare.Params, poincare.Segments]
	background poincare.Segments

	pan     complex64
	panning bool

	stroke     *Stroke // in progress, nil when not drawing
	lastScreen Point   // last position recorded into stroke
	strokes    []*Stroke

	shouldClose bool
}

// New creates a board and builds its background tiling.
// It returns an error if the tiling parameters are invalid or too large, or
// if the viewport is degenerate.
func New(opts ...Option) (*Board, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.viewport.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidViewport, err)
	}

	b := &Board{
		maxPoints: o.maxPoints,
		viewport:  o.viewport,
		tilings:   cache.New[poincare.Params, poincare.Segments](o.cacheBudget, poincare.Segments.Len),
	}
	if err := b.SetTiling(o.params); err != nil {
		return nil, err
	}

	Logger().Info("infiniboard: board created",
		slog.String("tiling", b.params.String()),
		slog.Int("width", b.viewport.Width),
		slog.Int("height", b.viewport.Height))
	return b, nil
}

// SetTiling replaces the background tiling. Tilings are cached by their
// parameters, so switching back to a previous one does not rebuild it.
// On error the board keeps its current background.
func (b *Board) SetTiling(p poincare.Params) error {
	segs, err := b.tilings.GetOrCreate(p, func() (poincare.Segments, error) {
		return poincare.Build(p, poincare.WithMaxPoints(b.maxPoints))
	})
	if err != nil {
		return fmt.Errorf("infiniboard: background %v: %w", p, err)
	}
	b.params = p
	b.background = segs

	st := b.tilings.Stats()
	Logger().Debug("infiniboard: tiling ready",
		slog.String("tiling", p.String()),
		slog.Int("segments", segs.NumSegments()),
		slog.Int("cached", st.Len),
		slog.Uint64("hits", st.Hits))
	return nil
}

// Prefetch builds the given tilings concurrently and caches them, so that a
// later SetTiling with the same parameters does not wait for the build.
// Cached tilings are skipped. The result joins the errors of the tilings
// that failed; the others are cached regardless.
func (b *Board) Prefetch(params ...poincare.Params) error {
	var todo []poincare.Params
	for _, p := range params {
		if !b.tilings.Contains(p) && !slices.Contains(todo, p) {
			todo = append(todo, p)
		}
	}
	if len(todo) == 0 {
		return nil
	}

	errs := parallel.Map(0, len(todo), func(i int) error {
		segs, err := poincare.Build(todo[i], poincare.WithMaxPoints(b.maxPoints))
		if err != nil {
			return fmt.Errorf("infiniboard: prefetch %v: %w", todo[i], err)
		}
		b.tilings.Set(todo[i], segs)
		return nil
	})

	Logger().Debug("infiniboard: prefetched tilings",
		slog.Int("requested", len(params)),
		slog.Int("built", len(todo)))
	return errors.Join(errs...)
}

// Params returns the background tiling parameters.
func (b *Board) Params() poincare.Params {
	return b.params
}

// Background returns the background tiling. The buffer is shared with the
// board's cache and must not be modified.
func (b *Board) Background() poincare.Segments {
	return b.background
}

// Viewport returns the current viewport.
func (b *Board) Viewport() Viewport {
	return b.viewport
}

// Pan returns the disk point the view is centred on.
func (b *Board) Pan() complex64 {
	return b.pan
}

// SetPan moves the view to z, clamped strictly inside the disk.
func (b *Board) SetPan(z complex64) {
	if m := cmath.Abs(z); m > maxPan {
		z = cmath.Scale(z, maxPan/m)
	}
	b.pan = z
}

// Panning reports whether a pan gesture is in progress.
func (b *Board) Panning() bool {
	return b.panning
}

// Drawing reports whether a stroke is in progress.
func (b *Board) Drawing() bool {
	return b.stroke != nil
}

// Strokes returns the finished strokes, oldest first.
func (b *Board) Strokes() []*Stroke {
	return b.strokes
}

// ShouldClose reports whether the user asked to quit.
func (b *Board) ShouldClose() bool {
	return b.shouldClose
}

// PointerDown starts a gesture: the left button pans the view to p, the
// right button starts a stroke at p. Other buttons are ignored.
func (b *Board) PointerDown(button gpucontext.MouseButton, p Point) {
	switch button {
	case gpucontext.MouseButtonLeft:
		b.panning = true
		b.SetPan(b.viewport.ToDisk(p))
	case gpucontext.MouseButtonRight:
		b.stroke = &Stroke{}
		b.record(p)
	default:
		Logger().Debug("infiniboard: ignoring button", slog.Int("button", int(button)))
	}
}

// PointerMove continues the active gestures at p.
func (b *Board) PointerMove(p Point) {
	if b.panning {
		b.SetPan(b.viewport.ToDisk(p))
	}
	if b.stroke != nil && p.Distance(b.lastScreen) >= minStrokeStep {
		b.record(p)
	}
}

// PointerUp ends the gesture started with button.
func (b *Board) PointerUp(button gpucontext.MouseButton, p Point) {
	switch button {
	case gpucontext.MouseButtonLeft:
		if !b.panning {
			Logger().Warn("infiniboard: pan release without press")
			return
		}
		b.SetPan(b.viewport.ToDisk(p))
		b.panning = false
	case gpucontext.MouseButtonRight:
		if b.stroke == nil {
			Logger().Warn("infiniboard: stroke release without press")
			return
		}
		if p.Distance(b.lastScreen) >= minStrokeStep {
			b.record(p)
		}
		b.finishStroke()
	}
}

// Cancel aborts both gestures. A stroke in progress is kept.
func (b *Board) Cancel() {
	b.panning = false
	if b.stroke != nil {
		b.finishStroke()
	}
}

// KeyPress handles a key: Q requests the board to close.
func (b *Board) KeyPress(key gpucontext.Key) {
	if key == gpucontext.KeyQ {
		b.shouldClose = true
	}
}

// Resize updates the viewport size. Non-positive sizes, as reported for
// minimised windows, are ignored.
func (b *Board) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b.viewport.Width = width
	b.viewport.Height = height
}

// ClearStrokes removes every stroke. A stroke in progress restarts empty.
func (b *Board) ClearStrokes() {
	b.strokes = nil
	if b.stroke != nil {
		b.stroke = &Stroke{}
	}
}

// record adds screen position p to the stroke in progress, in the board
// frame. Positions outside the disk are skipped.
func (b *Board) record(p Point) {
	z := b.viewport.ToDisk(p)
	if cmath.ModSq(z) >= 1 {
		return
	}
	b.stroke.add(poincare.S(poincare.Inverse(b.pan), z))
	b.lastScreen = p
}

func (b *Board) finishStroke() {
	s := b.stroke
	b.stroke = nil
	if s.Len() == 0 {
		return
	}
	b.strokes = append(b.strokes, s)
	Logger().Debug("infiniboard: stroke finished",
		slog.Int("points", s.Len()),
		slog.Int("strokes", len(b.strokes)))
}

// Frame is what the renderer needs to draw one frame.
type Frame struct {
	// Background is the tiling in the board frame.
	Background poincare.Segments
	// Strokes holds the segments of every stroke, finished or in progress,
	// in the board frame.
	Strokes poincare.Segments
	// Pan is the point the view is centred on; the renderer draws S(Pan, z)
	// for every board point z.
	Pan complex64
	// Ratio is the window aspect ratio.
	Ratio float32
	// Zoom is the viewport zoom.
	Zoom float32
}

// Frame returns the current frame. Background is shared with the board;
// Strokes is a fresh buffer.
func (b *Board) Frame() Frame {
	var strokes poincare.Segments
	for _, s := range b.strokes {
		strokes = s.appendSegments(strokes)
	}
	if b.stroke != nil {
		strokes = b.stroke.appendSegments(strokes)
	}
	return Frame{
		Background: b.background,
		Strokes:    strokes,
		Pan:        b.pan,
		Ratio:      b.viewport.Ratio(),
		Zoom:       float32(b.viewport.Zoom),
	}
}

// Uniforms returns the frame's shader parameters.
func (f Frame) Uniforms() vbo.Uniforms {
	return vbo.Uniforms{Pan: f.Pan, Ratio: f.Ratio, Zoom: f.Zoom}
}
