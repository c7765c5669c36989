package infiniboard

import (
	"log/slog"

	"github.com/gogpu/gpucontext"
)

// Attach registers the board's input handlers on src.
//
// If src also delivers unified pointer events (gpucontext.PointerEventSource)
// the board listens to those instead of the mouse callbacks, so a press is
// never seen twice.
func (b *Board) Attach(src gpucontext.EventSource) {
	if ps, ok := src.(gpucontext.PointerEventSource); ok {
		ps.OnPointer(b.HandlePointer)
	} else {
		src.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
			b.PointerDown(button, Pt(x, y))
		})
		src.OnMouseRelease(func(button gpucontext.MouseButton, x, y float64) {
			b.PointerUp(button, Pt(x, y))
		})
		src.OnMouseMove(func(x, y float64) {
			b.PointerMove(Pt(x, y))
		})
	}
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		b.KeyPress(key)
	})
	src.OnResize(b.Resize)
	src.OnFocus(func(focused bool) {
		if !focused {
			b.Cancel()
		}
	})
}

// HandlePointer routes a unified pointer event to PointerDown, PointerMove
// or PointerUp. A cancelled pointer ends every gesture.
func (b *Board) HandlePointer(ev gpucontext.PointerEvent) {
	p := Pt(ev.X, ev.Y)
	switch ev.Type {
	case gpucontext.PointerDown, gpucontext.PointerUp:
		button, ok := mouseButton(ev.Button)
		if !ok {
			Logger().Debug("infiniboard: ignoring pointer button", slog.String("button", ev.Button.String()))
			return
		}
		if ev.Type == gpucontext.PointerDown {
			b.PointerDown(button, p)
		} else {
			b.PointerUp(button, p)
		}
	case gpucontext.PointerMove:
		b.PointerMove(p)
	case gpucontext.PointerCancel:
		b.Cancel()
	}
}

// mouseButton maps a pointer button to the mouse button it stands for.
func mouseButton(b gpucontext.Button) (gpucontext.MouseButton, bool) {
	switch b {
	case gpucontext.ButtonLeft:
		return gpucontext.MouseButtonLeft, true
	case gpucontext.ButtonRight:
		return gpucontext.MouseButtonRight, true
	case gpucontext.ButtonMiddle:
		return gpucontext.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
