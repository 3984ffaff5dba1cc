package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// Image is a drawable image that can be cleared and filled in one call.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	clear(p.Pix)
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// packed16 is the shared storage of the 15- and 16-bit images.
type packed16 struct {
	Buffer
	Order binary.ByteOrder
}

func (p *packed16) get(x, y int) uint16 {
	return p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
}

func (p *packed16) put(x, y int, v uint16) {
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *packed16) fill(v uint16) {
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, v)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

func makePacked16(w, h int) packed16 {
	return packed16{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.BigEndian,
	}
}

// CRGB15Image is a 15-bits per pixel 5-5-5-bit RGB image.
type CRGB15Image struct {
	packed16
}

func NewCRGB15Image(w, h int) *CRGB15Image {
	return &CRGB15Image{makePacked16(w, h)}
}

func (p *CRGB15Image) ColorModel() color.Model {
	return CRGB15Model
}

func (p *CRGB15Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CRGB15{p.get(x, y) & 0x7fff}
}

func (p *CRGB15Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.put(x, y, crgb15Model(c).(CRGB15).V)
}

func (p *CRGB15Image) Fill(c color.Color) {
	p.fill(crgb15Model(c).(CRGB15).V)
}

// CBGR15Image is a 15-bits per pixel 5-5-5-bit BGR image.
type CBGR15Image struct {
	packed16
}

func NewCBGR15Image(w, h int) *CBGR15Image {
	return &CBGR15Image{makePacked16(w, h)}
}

func (p *CBGR15Image) ColorModel() color.Model {
	return CBGR15Model
}

func (p *CBGR15Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CBGR15{p.get(x, y) & 0x7fff}
}

func (p *CBGR15Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.put(x, y, cbgr15Model(c).(CBGR15).V)
}

func (p *CBGR15Image) Fill(c color.Color) {
	p.fill(cbgr15Model(c).(CBGR15).V)
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	packed16
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{makePacked16(w, h)}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CRGB16{p.get(x, y)}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.put(x, y, crgb16Model(c).(CRGB16).V)
}

func (p *CRGB16Image) Fill(c color.Color) {
	p.fill(crgb16Model(c).(CRGB16).V)
}

// CBGR16Image is a 16-bits per pixel 5-6-5-bit BGR image.
type CBGR16Image struct {
	packed16
}

func NewCBGR16Image(w, h int) *CBGR16Image {
	return &CBGR16Image{makePacked16(w, h)}
}

func (p *CBGR16Image) ColorModel() color.Model {
	return CBGR16Model
}

func (p *CBGR16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CBGR16{p.get(x, y)}
}

func (p *CBGR16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.put(x, y, cbgr16Model(c).(CBGR16).V)
}

func (p *CBGR16Image) Fill(c color.Color) {
	p.fill(cbgr16Model(c).(CBGR16).V)
}

// BGRAImage is a 32-bits per pixel image with [B, G, R, A] byte order.
type BGRAImage struct {
	Buffer
}

func NewBGRAImage(w, h int) *BGRAImage {
	return &BGRAImage{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
	}
}

func (p *BGRAImage) ColorModel() color.Model {
	return BGRAModel
}

func (p *BGRAImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	i := x*4 + y*p.Stride
	return BGRA{B: p.Pix[i], G: p.Pix[i+1], R: p.Pix[i+2], A: p.Pix[i+3]}
}

func (p *BGRAImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	v := bgraModel(c).(BGRA)
	i := x*4 + y*p.Stride
	p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3] = v.B, v.G, v.R, v.A
}

func (p *BGRAImage) Fill(c color.Color) {
	v := bgraModel(c).(BGRA)
	for i, l := 0, len(p.Pix); i+3 < l; i += 4 {
		p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3] = v.B, v.G, v.R, v.A
	}
}

// CopyWords converts a row-major RGBA word buffer of the given width into dst.
// The alpha byte is ignored and every pixel is written opaque. Pixels that
// fall outside of dst are dropped.
func CopyWords(dst draw.Image, src []byte, width int) {
	if width <= 0 {
		return
	}
	var (
		bounds = dst.Bounds()
		height = len(src) / WordSize / width
	)
	for y := 0; y < height && y < bounds.Dy(); y++ {
		for x := 0; x < width && x < bounds.Dx(); x++ {
			r, g, b, _ := WordAt(src, x+y*width).Channels()
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.NRGBA{R: r, G: g, B: b, A: Opaque})
		}
	}
}

// Interface checks.
var (
	_ Image = (*CBGR15Image)(nil)
	_ Image = (*CBGR16Image)(nil)
	_ Image = (*CRGB15Image)(nil)
	_ Image = (*CRGB16Image)(nil)
	_ Image = (*BGRAImage)(nil)
)

// BufferImage wraps an existing pixel buffer, such as mapped device memory,
// in the image type for model. Packed 16-bit values are stored using order.
// It returns nil for models without a matching image type.
func BufferImage(model color.Model, b Buffer, order binary.ByteOrder) draw.Image {
	switch model {
	case CRGB15Model:
		return &CRGB15Image{packed16{Buffer: b, Order: order}}
	case CBGR15Model:
		return &CBGR15Image{packed16{Buffer: b, Order: order}}
	case CRGB16Model:
		return &CRGB16Image{packed16{Buffer: b, Order: order}}
	case CBGR16Model:
		return &CBGR16Image{packed16{Buffer: b, Order: order}}
	case BGRAModel:
		return &BGRAImage{Buffer: b}
	case color.RGBAModel:
		return &image.RGBA{Pix: b.Pix, Stride: b.Stride, Rect: b.Rect}
	default:
		return nil
	}
}
