package pixels

import (
	"iter"
	"slices"

	"github.com/BeatGlow/pixels/pixel"
)

// fixedStride is the word stride of the FixedStride whole-frame mapping.
const fixedStride = 4

// Addressing selects the destination index mapping of whole-frame writes.
type Addressing uint8

// Supported addressing modes.
const (
	// FixedStride addresses destination rows with a constant stride of four
	// words and skips the last row and column of the source. It matches the
	// layout existing callers of the whole-frame path depend on.
	FixedStride Addressing = iota

	// RowStride copies the full frame using the real row stride. Landscape
	// frames are rotated into the portrait scanline layout.
	RowStride
)

func (a Addressing) String() string {
	switch a {
	case RowStride:
		return "row-stride"
	default:
		return "fixed-stride"
	}
}

// Pixel is a single colored point. Alpha is always written as opaque.
type Pixel struct {
	X, Y    int
	R, G, B uint8
}

// Blitter writes source frames and point streams into a Surface.
type Blitter struct {
	s          *Surface
	addressing Addressing
}

// NewBlitter returns a blitter writing into s.
func NewBlitter(s *Surface, addressing Addressing) *Blitter {
	return &Blitter{
		s:          s,
		addressing: addressing,
	}
}

// Addressing returns the whole-frame addressing mode.
func (b *Blitter) Addressing() Addressing {
	return b.addressing
}

// WriteBuffer copies a complete RGBA source frame into the surface using the
// orientation dependent index mapping. The source must hold exactly
// width*height words; anything else is rejected with a *FrameSizeError and
// leaves the surface untouched. Only whole frames are supported.
func (b *Blitter) WriteBuffer(src []byte) error {
	w, h := b.s.Size()
	if want := w * h * pixel.WordSize; len(src) != want {
		err := &FrameSizeError{Op: "write buffer", Want: want, Got: len(src)}
		Logger().Warn("rejected source frame", "error", err)
		return err
	}

	words := pixel.Words(src)
	switch b.addressing {
	case RowStride:
		b.writeRowStride(words, w, h)
	default:
		b.writeFixedStride(words, w, h)
	}
	return nil
}

func (b *Blitter) writeFixedStride(words []pixel.Word, w, h int) {
	var (
		landscape = b.s.orientation == Landscape
		size      = len(b.s.pix) / pixel.WordSize
	)
	for x := 0; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			var dst int
			if landscape {
				dst = (h - 1 - y) + x*fixedStride
			} else {
				dst = x + y*fixedStride
			}
			if dst >= size {
				// Narrow frames address past the buffer.
				continue
			}
			pixel.PutWord(b.s.pix, dst, words[x+y*w])
		}
	}
}

func (b *Blitter) writeRowStride(words []pixel.Word, w, h int) {
	if b.s.orientation != Landscape {
		for i, word := range words {
			pixel.PutWord(b.s.pix, i, word)
		}
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixel.PutWord(b.s.pix, (h-1-y)+x*h, words[x+y*w])
		}
	}
}

// DrawPoints writes each in-bounds point as [r, g, b, 255] at its row-major
// position. Points outside of the surface are dropped silently. Points are
// applied in iteration order, so the last point at a coordinate wins.
func (b *Blitter) DrawPoints(points iter.Seq[Pixel]) {
	var (
		w, h   = b.s.Size()
		pix    = b.s.pix
		stride = w * pixel.WordSize
	)
	for p := range points {
		if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
			continue
		}
		i := p.X*pixel.WordSize + p.Y*stride
		pix[i+0] = p.R
		pix[i+1] = p.G
		pix[i+2] = p.B
		pix[i+3] = pixel.Opaque
	}
}

// DrawPixels is DrawPoints over a fixed set of points.
func (b *Blitter) DrawPixels(points ...Pixel) {
	b.DrawPoints(slices.Values(points))
}

// SetPixel stores w at raw word index i without any bounds checking beyond the
// buffer itself; an index outside of the buffer panics.
func (b *Blitter) SetPixel(i int, w pixel.Word) {
	b.s.WriteWordAt(i, w)
}
