package pixels

import (
	"fmt"
	"image/color"
	"io"

	"github.com/BeatGlow/pixels/pixel"
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Orientation applied after construction.
	Orientation Orientation

	// Addressing of whole-frame writes.
	Addressing Addressing
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Width:  240,
	Height: 320,
}

// Display is a Surface together with the Blitter that writes into it. It is
// the type most callers use.
//
// Display also implements [image/draw.Image]; Set goes through the point-draw
// path, so anything composited with [image/draw] is clipped the same way.
type Display struct {
	*Surface
	*Blitter
}

// New returns a Portrait display of the given size using FixedStride
// addressing.
func New(width, height int, sink Sink) (*Display, error) {
	return Open(&Config{Width: width, Height: height}, sink)
}

// Open a display using the provided configuration. A nil config uses
// DefaultConfig.
func Open(config *Config, sink Sink) (*Display, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	s, err := NewSurface(config.Width, config.Height, sink)
	if err != nil {
		return nil, err
	}
	s.SetOrientation(config.Orientation)

	return &Display{
		Surface: s,
		Blitter: NewBlitter(s, config.Addressing),
	}, nil
}

func (d *Display) String() string {
	w, h := d.Size()
	return fmt.Sprintf("%dx%d %s display (%s)", w, h, d.Orientation(), d.Addressing())
}

// ColorModel used by the display.
func (d *Display) ColorModel() color.Model {
	return color.NRGBAModel
}

// At returns the color of the pixel at (x, y) using row-major addressing.
func (d *Display) At(x, y int) color.Color {
	w, h := d.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return color.Transparent
	}
	return d.WordAt(x + y*w).NRGBA()
}

// Set the pixel color at (x, y).
func (d *Display) Set(x, y int, c color.Color) {
	r, g, b, _ := pixel.WordOf(c).Channels()
	d.DrawPixels(Pixel{X: x, Y: y, R: r, G: g, B: b})
}

// Close the sink, if it can be closed.
func (d *Display) Close() error {
	if c, ok := d.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
