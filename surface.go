// Package pixels exposes a host-backed RGBA framebuffer as a drawable surface.
//
// Callers write either complete frames ([Blitter.WriteBuffer]) or streams of
// colored points ([Blitter.DrawPoints]) into a [Surface], and make the result
// visible by calling [Surface.Present], which hands the buffer to a [Sink].
// No write presents implicitly.
package pixels

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/pixels/pixel"
)

// Orientation is the logical rotation state of a surface.
type Orientation uint8

// Supported orientations.
const (
	Portrait  Orientation = iota
	Landscape             // Width and height swapped
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// OrientationFromDegrees maps a rotation in degrees onto an orientation.
// Quarter turns select Landscape, everything else Portrait.
func OrientationFromDegrees(degrees int) Orientation {
	switch ((degrees % 360) + 360) % 360 {
	case 90, 270:
		return Landscape
	default:
		return Portrait
	}
}

// Frame is the buffer handed to a Sink on present.
type Frame struct {
	// Pix holds Width*Height RGBA words, row-major, origin top-left.
	Pix []byte

	// Width and Height are the logical dimensions at present time.
	Width, Height int

	// Orientation of the surface at present time.
	Orientation Orientation
}

// Bounds is the frame bounding box.
func (f Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// Sink makes a frame visible. Pix is only valid for the duration of the call;
// sinks that present asynchronously must copy it.
type Sink interface {
	Present(Frame) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Frame) error

// Present calls f(frame).
func (f SinkFunc) Present(frame Frame) error {
	return f(frame)
}

type discard struct{}

func (discard) Present(Frame) error { return nil }

// Surface owns the destination pixel buffer, its logical dimensions and its
// orientation.
type Surface struct {
	width       int
	height      int
	orientation Orientation
	pix         []byte
	sink        Sink
}

// NewSurface allocates a Portrait surface of width*height RGBA pixels. A nil
// sink discards presented frames.
func NewSurface(width, height int, sink Sink) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrSize
	}
	if sink == nil {
		sink = discard{}
	}
	Logger().Debug("surface created", "width", width, "height", height)
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*pixel.WordSize),
		sink:   sink,
	}, nil
}

// Size returns the current logical dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Bounds is the surface bounding box.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Orientation returns the current orientation.
func (s *Surface) Orientation() Orientation {
	return s.orientation
}

// SetOrientation switches the indexing scheme used by subsequent writes. The
// buffer is not transposed, cleared or reallocated; only the width and height
// are swapped. Values other than Portrait and Landscape are ignored.
func (s *Surface) SetOrientation(o Orientation) {
	if o != Portrait && o != Landscape {
		Logger().Warn("ignored invalid orientation", "orientation", o)
		return
	}
	if o == s.orientation {
		return
	}
	s.width, s.height = s.height, s.width
	s.orientation = o
	Logger().Debug("surface orientation changed", "orientation", o, "width", s.width, "height", s.height)
}

// Pix returns the backing buffer. It stays valid for the lifetime of the surface.
func (s *Surface) Pix() []byte {
	return s.pix
}

// WordAt returns the word at word index i.
func (s *Surface) WordAt(i int) pixel.Word {
	return pixel.WordAt(s.pix, i)
}

// WriteWordAt stores w at word index i. An index outside of the buffer panics.
func (s *Surface) WriteWordAt(i int, w pixel.Word) {
	pixel.PutWord(s.pix, i, w)
}

// Clear the surface to transparent black.
func (s *Surface) Clear() {
	clear(s.pix)
}

// Fill the surface with a single opaque color.
func (s *Surface) Fill(c color.Color) {
	w := pixel.WordOf(c)
	for i, l := 0, len(s.pix)/pixel.WordSize; i < l; i++ {
		pixel.PutWord(s.pix, i, w)
	}
}

// Frame describes the current buffer contents.
func (s *Surface) Frame() Frame {
	return Frame{
		Pix:         s.pix,
		Width:       s.width,
		Height:      s.height,
		Orientation: s.orientation,
	}
}

// Present flushes the buffer to the sink.
func (s *Surface) Present() error {
	return s.sink.Present(s.Frame())
}
