package draw

import (
	"image"
	"image/color"
	"iter"

	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/pixels"
)

// Image draws src with its top-left corner at at. Pixels that are less than
// half opaque are skipped; the rest are drawn opaque.
func Image(src image.Image, at image.Point) iter.Seq[pixels.Pixel] {
	b := src.Bounds()
	return func(yield func(pixels.Pixel) bool) {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				if c.A < 0x80 {
					continue
				}
				if !yield(pixels.Pixel{
					X: at.X + x - b.Min.X,
					Y: at.Y + y - b.Min.Y,
					R: c.R,
					G: c.G,
					B: c.B,
				}) {
					return
				}
			}
		}
	}
}

// Scaled draws src scaled into r with nearest-neighbour sampling.
func Scaled(src image.Image, r image.Rectangle) iter.Seq[pixels.Pixel] {
	r = r.Canon()
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return Image(dst, r.Min)
}
