// Package draw decomposes shapes, text and images into point streams.
//
// Every function returns an [iter.Seq] of [pixels.Pixel] that can be handed to
// [pixels.Blitter.DrawPoints]. Points are not clipped here; the surface drops
// everything outside of its bounds.
//
//	d.DrawPoints(draw.Line(image.Pt(0, 0), image.Pt(10, 10), color.White))
package draw

import (
	"image/color"
	"iter"

	"github.com/BeatGlow/pixels"
	"github.com/BeatGlow/pixels/pixel"
)

// plotFunc emits a point at (x, y).
type plotFunc func(x, y int)

// stream turns a plotting routine into a point stream of a single color. Once
// the consumer stops, further plots are ignored.
func stream(c color.Color, draw func(plot plotFunc)) iter.Seq[pixels.Pixel] {
	r, g, b, _ := pixel.WordOf(c).Channels()
	return func(yield func(pixels.Pixel) bool) {
		ok := true
		draw(func(x, y int) {
			if ok {
				ok = yield(pixels.Pixel{X: x, Y: y, R: r, G: g, B: b})
			}
		})
	}
}

// Concat chains point streams; later streams draw over earlier ones.
func Concat(seqs ...iter.Seq[pixels.Pixel]) iter.Seq[pixels.Pixel] {
	return func(yield func(pixels.Pixel) bool) {
		for _, seq := range seqs {
			for p := range seq {
				if !yield(p) {
					return
				}
			}
		}
	}
}
