package draw

import (
	"fmt"
	"image"
	"image/color"
	"iter"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/pixels"
)

// DefaultFace is used by Text when no face is given.
var DefaultFace font.Face = basicfont.Face7x13

// ParseFace parses a TrueType font and returns a face of size points at dpi.
func ParseFace(ttf []byte, size, dpi float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("draw: parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// MeasureText returns the advance width of s in pixels.
func MeasureText(face font.Face, s string) int {
	if face == nil {
		face = DefaultFace
	}
	return font.MeasureString(face, s).Ceil()
}

// Text draws s with the baseline of its first glyph at dot. Glyph pixels with
// at least half coverage are drawn; there is no blending.
func Text(face font.Face, dot image.Point, s string, c color.Color) iter.Seq[pixels.Pixel] {
	if face == nil {
		face = DefaultFace
	}

	bounds, _ := font.BoundString(face, s)
	mask := image.NewAlpha(image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	))
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{},
	}
	drawer.DrawString(s)

	r := mask.Bounds()
	return stream(c, func(plot plotFunc) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if mask.AlphaAt(x, y).A >= 0x80 {
					plot(dot.X+x, dot.Y+y)
				}
			}
		}
	})
}
