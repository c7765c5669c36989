package preview

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/jbeda/geom"

	"github.com/gogpu/infiniboard/poincare"
)

// svgWriter formats SVG elements and keeps the first write error.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(viewBox geom.Rect, background color.Color) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
	s.printf("<rect x='%f' y='%f' width='%f' height='%f' fill='%s'/>\n",
		viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), hex(background))
}

func (s *svgWriter) end() {
	s.printf("</svg>\n")
	if s.err == nil {
		s.err = s.w.Flush()
	}
}

func (s *svgWriter) circle(c geom.Coord, r float64, stroke color.Color, width float32) {
	s.printf("<circle cx='%f' cy='%f' r='%f' fill='none' stroke='%s' stroke-width='%g'/>\n",
		c.X, c.Y, r, hex(stroke), width)
}

// lines writes segments as one group so the stroke attributes are shared.
func (s *svgWriter) lines(m mapping, segs poincare.Segments, stroke color.Color, width float32) {
	if segs.NumSegments() == 0 {
		return
	}
	s.printf("<g stroke='%s' stroke-width='%g' stroke-linecap='round'>\n", hex(stroke), width)
	for i := range segs.NumSegments() {
		a, b := segs.Segment(i)
		p1, p2 := m.coord(a), m.coord(b)
		s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f'/>\n", p1.X, p1.Y, p2.X, p2.Y)
	}
	s.printf("</g>\n")
}

func (s *svgWriter) text(at geom.Coord, text string, fill color.Color) {
	s.printf("<text x='%f' y='%f' font-family='sans-serif' font-size='%d' fill='%s'>",
		at.X, at.Y, captionSize, hex(fill))
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
	s.printf("</text>\n")
}

func (m mapping) coord(z complex64) geom.Coord {
	x, y := m.pixel(z)
	return geom.Coord{X: float64(x), Y: float64(y)}
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// viewBox returns the smallest rectangle holding the disk and every point.
func viewBox(m mapping, sets ...poincare.Segments) geom.Rect {
	c := float64(m.centre)
	r := float64(m.scale)
	box := geom.Rect{
		Min: geom.Coord{X: c - r, Y: c - r},
		Max: geom.Coord{X: c + r, Y: c + r},
	}
	for _, s := range sets {
		for _, z := range s {
			box.ExpandToContainCoord(m.coord(z))
		}
	}
	return box
}

// WriteSVG writes points, and the strokes of opts, as SVG line elements in
// the pixel frame Render uses.
func WriteSVG(w io.Writer, points poincare.Segments, opts Options) error {
	o, err := opts.withDefaults()
	if err != nil {
		return err
	}
	m := newMapping(o.Size)
	tiling := panned(points, o.Pan)
	strokes := panned(o.Strokes, o.Pan)

	s := &svgWriter{w: bufio.NewWriter(w)}
	s.start(viewBox(m, tiling, strokes), o.Background)
	s.circle(geom.Coord{X: float64(m.centre), Y: float64(m.centre)}, float64(m.scale), o.Circle, o.LineWidth)
	s.lines(m, tiling, o.Line, o.LineWidth)
	s.lines(m, strokes, o.Stroke, 2*o.LineWidth)
	if o.Caption != "" {
		pad := float64(captionSize / 2)
		s.text(geom.Coord{X: pad, Y: pad + captionSize}, o.Caption, o.Line)
	}
	s.end()
	if s.err != nil {
		return fmt.Errorf("preview: write svg: %w", s.err)
	}
	return nil
}

// SaveSVG writes the SVG of points to path.
func SaveSVG(path string, points poincare.Segments, opts Options) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := WriteSVG(f, points, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	Logger().Info("preview: wrote svg", slog.String("path", path))
	return nil
}
