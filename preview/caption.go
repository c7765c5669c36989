package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// captionSize is the caption font size in pixels.
const captionSize = 14

var (
	captionOnce sync.Once
	captionFont *opentype.Font
	captionErr  error
)

func parsedCaptionFont() (*opentype.Font, error) {
	captionOnce.Do(func() {
		captionFont, captionErr = opentype.Parse(goregular.TTF)
	})
	return captionFont, captionErr
}

// drawCaption draws text one line below the top left corner.
func drawCaption(dst draw.Image, text string, c color.Color) error {
	f, err := parsedCaptionFont()
	if err != nil {
		return fmt.Errorf("preview: caption font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("preview: caption face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	pad := captionSize / 2
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(pad),
			Y: fixed.I(pad) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
	return nil
}
