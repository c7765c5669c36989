package infiniboard

import (
	"fmt"
)

// Viewport maps window pixels to the Poincaré disk.
//
// The window centre maps to 0 and the disk is scaled so that half the window
// height is 1/Zoom; the disk's y axis points up. With Zoom slightly below 1
// the whole disk fits vertically with a small margin.
type Viewport struct {
	Width, Height int
	Zoom          float64
}

// DefaultViewport returns an 800×600 window at zoom 0.99.
func DefaultViewport() Viewport {
	return Viewport{Width: 800, Height: 600, Zoom: 0.99}
}

// Validate reports whether v has a positive size and zoom.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("viewport size %dx%d must be positive", v.Width, v.Height)
	}
	if !(v.Zoom > 0) {
		return fmt.Errorf("viewport zoom %v must be positive", v.Zoom)
	}
	return nil
}

func (v Viewport) centre() Point {
	return Pt(float64(v.Width)/2, float64(v.Height)/2)
}

// scale is the number of pixels per disk unit.
func (v Viewport) scale() float64 {
	return float64(v.Height) / 2 * v.Zoom
}

// ToDisk maps a window position to the disk.
func (v Viewport) ToDisk(p Point) complex64 {
	d := p.Sub(v.centre()).Div(v.scale())
	return complex(float32(d.X), float32(-d.Y))
}

// FromDisk maps a disk position back to the window. It inverts ToDisk.
func (v Viewport) FromDisk(z complex64) Point {
	d := Pt(float64(real(z)), -float64(imag(z)))
	return v.centre().Add(d.Mul(v.scale()))
}

// Ratio returns the aspect ratio Width/Height.
func (v Viewport) Ratio() float32 {
	return float32(v.Width) / float32(v.Height)
}
