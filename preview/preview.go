// Package preview renders tilings off-screen, to PNG and SVG.
//
// The preview draws the same segment buffers that are uploaded to the GPU,
// so it doubles as a check of the vertex buffer contract: what the CPU side
// built is what ends up on the image.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/infiniboard/poincare"
)

// ErrSize is returned for a negative image size.
var ErrSize = errors.New("preview: invalid image size")

// DefaultSize is the image side length used when Options.Size is zero.
const DefaultSize = 512

// margin is the fraction of the half side left free around the disk.
const margin = 0.02

// Options controls how a tiling is drawn. The zero value is usable.
type Options struct {
	// Size is the side length of the square image in pixels.
	// Zero selects DefaultSize.
	Size int

	// LineWidth is the segment width in pixels. Zero selects 1.
	LineWidth float32

	// Pan re-centres the drawing: every point z is drawn at S(Pan, z).
	Pan complex64

	// Strokes are drawn over the tiling with twice the line width.
	Strokes poincare.Segments

	// Caption is drawn in the top left corner when not empty.
	Caption string

	// Colors. Nil selects the defaults.
	Background color.Color
	Line       color.Color
	Stroke     color.Color
	Circle     color.Color
}

var (
	defaultBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	defaultLine       = color.RGBA{0x30, 0x30, 0x30, 0xff}
	defaultStroke     = color.RGBA{0xd0, 0x20, 0x20, 0xff}
	defaultCircle     = color.RGBA{0x90, 0x90, 0x90, 0xff}
)

func (o Options) withDefaults() (Options, error) {
	if o.Size < 0 {
		return o, fmt.Errorf("%w: %d", ErrSize, o.Size)
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}
	if o.Background == nil {
		o.Background = defaultBackground
	}
	if o.Line == nil {
		o.Line = defaultLine
	}
	if o.Stroke == nil {
		o.Stroke = defaultStroke
	}
	if o.Circle == nil {
		o.Circle = defaultCircle
	}
	return o, nil
}

// mapping converts disk coordinates to pixels, y pointing down.
type mapping struct {
	centre float32
	scale  float32
}

func newMapping(size int) mapping {
	h := float32(size) / 2
	return mapping{centre: h, scale: h * (1 - margin)}
}

func (m mapping) pixel(z complex64) (x, y float32) {
	return m.centre + real(z)*m.scale, m.centre - imag(z)*m.scale
}

// Render draws points, a segment buffer, into a new image.
func Render(points poincare.Segments, opts Options) (*image.RGBA, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, o.Size, o.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	m := newMapping(o.Size)
	drawCircle(img, m, o.Circle, o.LineWidth)
	drawSegments(img, m, panned(points, o.Pan), o.Line, o.LineWidth)
	drawSegments(img, m, panned(o.Strokes, o.Pan), o.Stroke, 2*o.LineWidth)
	if o.Caption != "" {
		if err := drawCaption(img, o.Caption, o.Line); err != nil {
			return nil, err
		}
	}

	Logger().Debug("preview: rendered",
		slog.Int("size", o.Size),
		slog.Int("segments", points.NumSegments()),
		slog.Int("strokeSegments", o.Strokes.NumSegments()))
	return img, nil
}

func panned(s poincare.Segments, pan complex64) poincare.Segments {
	if pan == 0 || len(s) == 0 {
		return s
	}
	return s.Transform(pan)
}

// drawSegments fills one quad per segment. All quads share a winding
// direction so overlaps accumulate instead of cancelling.
func drawSegments(dst draw.Image, m mapping, s poincare.Segments, c color.Color, width float32) {
	if s.NumSegments() == 0 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2
	for i := range s.NumSegments() {
		a, e := s.Segment(i)
		ax, ay := m.pixel(a)
		bx, by := m.pixel(e)
		dx, dy := bx-ax, by-ay
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		r.MoveTo(ax+nx, ay+ny)
		r.LineTo(bx+nx, by+ny)
		r.LineTo(bx-nx, by-ny)
		r.LineTo(ax-nx, ay-ny)
		r.ClosePath()
	}
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// circleSteps is the number of chords approximating the boundary circle.
const circleSteps = 256

// drawCircle draws the unit circle as a ring: the outer outline one way,
// the inner outline the other way round.
func drawCircle(dst draw.Image, m mapping, c color.Color, width float32) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	outer := m.scale + width/2
	inner := m.scale - width/2
	ring(r, m.centre, outer, false)
	ring(r, m.centre, inner, true)
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func ring(r *vector.Rasterizer, centre, radius float32, reverse bool) {
	for k := range circleSteps + 1 {
		t := 2 * math.Pi * float64(k) / circleSteps
		if reverse {
			t = -t
		}
		x := centre + radius*float32(math.Cos(t))
		y := centre + radius*float32(math.Sin(t))
		if k == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	Logger().Info("preview: wrote png", slog.String("path", path))
	return nil
}
